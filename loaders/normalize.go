package loaders

import (
	"maps"
	"slices"

	"github.com/reusee/turing/machines"
	"golang.org/x/text/unicode/norm"
)

// normalize composes every text field, so that a symbol typed as a base
// letter plus combining mark still counts as one character.
func normalize(d *machines.Description) {
	d.Name = norm.NFC.String(d.Name)
	d.Blank = norm.NFC.String(d.Blank)
	for i, s := range d.Alphabet {
		d.Alphabet[i] = norm.NFC.String(s)
	}
	normalizeStates(d.States)
	normalizeStates(d.Finals)
	d.Initial = machines.StateName(norm.NFC.String(string(d.Initial)))

	if len(d.Transitions) == 0 {
		return
	}
	transitions := make(map[machines.StateName][]machines.Transition, len(d.Transitions))
	// merge order follows the source spelling, so first-match-wins is stable
	for _, state := range slices.Sorted(maps.Keys(d.Transitions)) {
		list := d.Transitions[state]
		for i, t := range list {
			list[i] = machines.Transition{
				Read:    norm.NFC.String(t.Read),
				ToState: machines.StateName(norm.NFC.String(string(t.ToState))),
				Write:   norm.NFC.String(t.Write),
				Action:  t.Action,
			}
		}
		key := machines.StateName(norm.NFC.String(string(state)))
		// spellings that compose to the same state are merged
		transitions[key] = append(transitions[key], list...)
	}
	d.Transitions = transitions
}

func normalizeStates(states []machines.StateName) {
	for i, s := range states {
		states[i] = machines.StateName(norm.NFC.String(string(s)))
	}
}

// NormalizeInput composes an input string the same way descriptions are.
func NormalizeInput(input string) string {
	return norm.NFC.String(input)
}
