package drivers

import "fmt"

type Outcome uint8

const (
	Invalid Outcome = iota
	Accepted
	Rejected
	StepLimit
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Invalid:
		return "INVALID"
	case Accepted:
		return "ACCEPT"
	case Rejected:
		return "REJECT"
	case StepLimit:
		return "STEP LIMIT"
	case Cancelled:
		return "CANCELLED"
	}
	return fmt.Sprintf("Outcome(%d)", o)
}

// Halted reports whether the machine itself decided the outcome.
func (o Outcome) Halted() bool {
	return o == Accepted || o == Rejected
}
