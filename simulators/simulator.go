package simulators

import (
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/tapes"
)

// Configuration is the observable state of a run at one point.
type Configuration struct {
	State machines.StateName
	Tape  tapes.Tape
	// number of transitions applied before this configuration
	Steps int
}

// Step is one element of a run.
// For a running step, Configuration is taken before Transition is applied.
// A halted step carries no transition.
type Step struct {
	Configuration
	Transition *machines.Transition
	Status     Status
}

func (s Step) Read() tapes.Symbol {
	return s.Tape.Read()
}

type Simulator struct {
	machine *machines.Machine
	state   machines.StateName
	tape    tapes.Tape
	steps   int
	status  Status
}

// New validates input against the machine alphabet and places it on a fresh tape.
func New(machine *machines.Machine, input string) (*Simulator, error) {
	if err := machine.ValidateInput(input); err != nil {
		return nil, err
	}
	return &Simulator{
		machine: machine,
		state:   machine.Initial(),
		tape:    tapes.New(input, machine.Blank()),
	}, nil
}

func (s *Simulator) Machine() *machines.Machine {
	return s.machine
}

func (s *Simulator) Status() Status {
	return s.status
}

func (s *Simulator) Configuration() Configuration {
	return Configuration{
		State: s.state,
		Tape:  s.tape,
		Steps: s.steps,
	}
}

// Step advances the machine by one transition.
// Once halted, it keeps returning the terminal step.
func (s *Simulator) Step() Step {
	current := s.Configuration()

	if s.status.Halted() {
		return Step{
			Configuration: current,
			Status:        s.status,
		}
	}

	// final states never fire their transitions
	if s.machine.IsFinal(s.state) {
		s.status = Accepted
		return Step{
			Configuration: current,
			Status:        Accepted,
		}
	}

	transition, ok := s.machine.Lookup(s.state, s.tape.Read())
	if !ok {
		s.status = Rejected
		return Step{
			Configuration: current,
			Status:        Rejected,
		}
	}

	s.tape = s.tape.Write(transition.WriteSymbol()).Move(transition.Action)
	s.state = transition.ToState
	s.steps++

	return Step{
		Configuration: current,
		Transition:    &transition,
		Status:        Running,
	}
}

// Run yields every step until the machine halts; the last step carries
// Accepted or Rejected. There is no step limit: a non-halting machine
// yields forever, so callers bound the iteration themselves.
// Steps consumed by a previous iteration are not replayed.
func (s *Simulator) Run(yield func(Step) bool) {
	for {
		step := s.Step()
		if !yield(step) {
			return
		}
		if step.Status.Halted() {
			return
		}
	}
}
