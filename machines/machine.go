package machines

import (
	"fmt"

	"github.com/reusee/turing/tapes"
	"github.com/samber/lo"
)

// Machine is a validated description with its transition table indexed by
// state then by read symbol. Only Compile builds one.
type Machine struct {
	description *Description
	blank       tapes.Symbol
	finals      map[StateName]bool
	table       map[StateName]map[tapes.Symbol]Transition
}

// Compile validates d and indexes its transitions.
// When several transitions of a state read the same symbol, the first declared wins,
// unless strict is set, in which case the description is rejected.
func Compile(d *Description, strict bool) (*Machine, error) {
	if err := ValidateDescription(d); err != nil {
		return nil, err
	}
	if strict {
		if dups := Duplicates(d); len(dups) > 0 {
			dup := dups[0]
			return nil, fmt.Errorf("%w: state %q reads %q at %d and %d",
				ErrDuplicateTransition, dup.State, dup.Read, dup.ShadowedBy, dup.Index)
		}
	}

	m := &Machine{
		description: d,
		blank:       d.BlankSymbol(),
		finals:      lo.SliceToMap(d.Finals, func(s StateName) (StateName, bool) { return s, true }),
		table:       make(map[StateName]map[tapes.Symbol]Transition, len(d.Transitions)),
	}
	for state, transitions := range d.Transitions {
		bySymbol := make(map[tapes.Symbol]Transition, len(transitions))
		for _, transition := range transitions {
			read := transition.ReadSymbol()
			if _, ok := bySymbol[read]; ok {
				continue
			}
			bySymbol[read] = transition
		}
		m.table[state] = bySymbol
	}

	return m, nil
}

func (m *Machine) Description() *Description {
	return m.description
}

func (m *Machine) Name() string {
	return m.description.Name
}

func (m *Machine) Initial() StateName {
	return m.description.Initial
}

func (m *Machine) Blank() tapes.Symbol {
	return m.blank
}

func (m *Machine) IsFinal(state StateName) bool {
	return m.finals[state]
}

func (m *Machine) Lookup(state StateName, read tapes.Symbol) (Transition, bool) {
	transition, ok := m.table[state][read]
	return transition, ok
}

func (m *Machine) ValidateInput(input string) error {
	return ValidateInput(m.description, input)
}
