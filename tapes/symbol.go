package tapes

// Symbol is a single tape character.
type Symbol rune

func (s Symbol) String() string {
	return string(s)
}
