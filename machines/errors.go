package machines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDescription = errors.New("invalid description")

	ErrBlankNotInAlphabet     = fmt.Errorf("%w: blank symbol not in alphabet", ErrInvalidDescription)
	ErrAlphabetSymbolTooWide  = fmt.Errorf("%w: alphabet symbol is not exactly one character", ErrInvalidDescription)
	ErrInitialStateUnknown    = fmt.Errorf("%w: initial state not in states", ErrInvalidDescription)
	ErrFinalStateUnknown      = fmt.Errorf("%w: final state not in states", ErrInvalidDescription)
	ErrTransitionStateUnknown = fmt.Errorf("%w: transition state not in states", ErrInvalidDescription)
	ErrTransitionInvalid      = fmt.Errorf("%w: transition symbol, target or action invalid", ErrInvalidDescription)
	ErrDuplicateTransition    = fmt.Errorf("%w: duplicated transition", ErrInvalidDescription)
)

var (
	ErrInvalidInput = errors.New("invalid input")

	ErrInputContainsBlank       = fmt.Errorf("%w: input contains blank symbol", ErrInvalidInput)
	ErrInputSymbolNotInAlphabet = fmt.Errorf("%w: input symbol not in alphabet", ErrInvalidInput)
)
