package simulators

import "fmt"

type Status uint8

const (
	Running Status = iota
	Accepted
	Rejected
)

func (s Status) Halted() bool {
	return s == Accepted || s == Rejected
}

func (s Status) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case Accepted:
		return "ACCEPT"
	case Rejected:
		return "REJECT"
	}
	return fmt.Sprintf("Status(%d)", s)
}
