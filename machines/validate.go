package machines

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// ValidateDescription runs the structural checks in order and returns the first failure.
func ValidateDescription(d *Description) error {
	if !lo.Contains(d.Alphabet, d.Blank) {
		return fmt.Errorf("%w: %q", ErrBlankNotInAlphabet, d.Blank)
	}

	for _, symbol := range d.Alphabet {
		if utf8.RuneCountInString(symbol) != 1 {
			return fmt.Errorf("%w: %q", ErrAlphabetSymbolTooWide, symbol)
		}
	}

	if !lo.Contains(d.States, d.Initial) {
		return fmt.Errorf("%w: %q", ErrInitialStateUnknown, d.Initial)
	}

	for _, state := range d.Finals {
		if !lo.Contains(d.States, state) {
			return fmt.Errorf("%w: %q", ErrFinalStateUnknown, state)
		}
	}

	states := slices.Sorted(maps.Keys(d.Transitions))
	for _, state := range states {
		if !lo.Contains(d.States, state) {
			return fmt.Errorf("%w: %q", ErrTransitionStateUnknown, state)
		}
	}

	for _, state := range states {
		for i, transition := range d.Transitions[state] {
			if !lo.Contains(d.Alphabet, transition.Read) ||
				!lo.Contains(d.Alphabet, transition.Write) ||
				!lo.Contains(d.States, transition.ToState) ||
				!transition.Action.Valid() {
				return fmt.Errorf("%w: %s[%d] %+v", ErrTransitionInvalid, state, i, transition)
			}
		}
	}

	return nil
}

// ValidateInput checks that input can be placed on the tape of d.
// Empty input is valid.
func ValidateInput(d *Description, input string) error {
	if d.Blank != "" && strings.Contains(input, d.Blank) {
		return fmt.Errorf("%w: %q", ErrInputContainsBlank, d.Blank)
	}
	for i, r := range input {
		if !lo.Contains(d.Alphabet, string(r)) {
			return fmt.Errorf("%w: %q at %d", ErrInputSymbolNotInAlphabet, r, i)
		}
	}
	return nil
}

type Duplicate struct {
	State StateName
	Read  string
	// index of the shadowed transition in the state's list
	Index int
	// index of the transition that wins
	ShadowedBy int
}

// Duplicates lists transitions that can never fire because an earlier
// transition of the same state reads the same symbol.
func Duplicates(d *Description) (ret []Duplicate) {
	for _, state := range slices.Sorted(maps.Keys(d.Transitions)) {
		seen := make(map[string]int)
		for i, transition := range d.Transitions[state] {
			if first, ok := seen[transition.Read]; ok {
				ret = append(ret, Duplicate{
					State:      state,
					Read:       transition.Read,
					Index:      i,
					ShadowedBy: first,
				})
				continue
			}
			seen[transition.Read] = i
		}
	}
	return
}
