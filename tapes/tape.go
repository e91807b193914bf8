package tapes

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Tape is an immutable bi-infinite tape with a head.
// Positions not present in cells hold the blank symbol.
// The cells map is never mutated once a Tape is built, so moves share it.
type Tape struct {
	cells map[int]Symbol
	blank Symbol
	head  int
}

// New places input[i] at position i, head at 0.
// input must not contain blank.
func New(input string, blank Symbol) Tape {
	cells := make(map[int]Symbol, len(input))
	i := 0
	for _, r := range input {
		cells[i] = Symbol(r)
		i++
	}
	return Tape{
		cells: cells,
		blank: blank,
	}
}

func (t Tape) Blank() Symbol {
	return t.blank
}

func (t Tape) Head() int {
	return t.head
}

func (t Tape) Read() Symbol {
	return t.At(t.head)
}

func (t Tape) At(pos int) Symbol {
	if s, ok := t.cells[pos]; ok {
		return s
	}
	return t.blank
}

// Write returns a tape holding symbol under the head.
// Writing the blank clears the cell.
func (t Tape) Write(symbol Symbol) Tape {
	cells := maps.Clone(t.cells)
	if cells == nil {
		cells = make(map[int]Symbol)
	}
	if symbol == t.blank {
		delete(cells, t.head)
	} else {
		cells[t.head] = symbol
	}
	return Tape{
		cells: cells,
		blank: t.blank,
		head:  t.head,
	}
}

func (t Tape) Move(direction Direction) Tape {
	head := t.head
	switch direction {
	case Left:
		head--
	case Right:
		head++
	default:
		panic(fmt.Errorf("%w: %d", ErrUnknownDirection, direction))
	}
	return Tape{
		cells: t.cells,
		blank: t.blank,
		head:  head,
	}
}

// Footprint returns the stored positions in ascending order.
func (t Tape) Footprint() []int {
	return slices.Sorted(maps.Keys(t.cells))
}

func (t Tape) bounds() (lo, hi int, ok bool) {
	for pos := range t.cells {
		if !ok {
			lo, hi, ok = pos, pos, true
			continue
		}
		lo = min(lo, pos)
		hi = max(hi, pos)
	}
	return
}

// Contents returns the symbols between the lowest and highest stored positions.
func (t Tape) Contents() string {
	lo, hi, ok := t.bounds()
	if !ok {
		return ""
	}
	var b strings.Builder
	for pos := lo; pos <= hi; pos++ {
		b.WriteRune(rune(t.At(pos)))
	}
	return b.String()
}

// Equal reports whether both tapes have the same blank, head and footprint.
func (t Tape) Equal(other Tape) bool {
	return t.blank == other.blank &&
		t.head == other.head &&
		maps.Equal(t.cells, other.cells)
}

const (
	renderBehind = 2
	renderAhead  = 10
)

// RenderWith formats a window around the head, marking the head cell with mark.
func (t Tape) RenderWith(mark func(Symbol) string) string {
	lo, hi, ok := t.bounds()
	if !ok {
		return "[" + mark(t.blank) + "]"
	}
	start := min(lo, t.head-renderBehind)
	end := max(hi, t.head+renderAhead)
	var b strings.Builder
	b.WriteByte('[')
	for pos := start; pos <= end; pos++ {
		if pos == t.head {
			b.WriteString(mark(t.At(pos)))
			continue
		}
		b.WriteRune(rune(t.At(pos)))
	}
	b.WriteByte(']')
	return b.String()
}

func (t Tape) Render() string {
	return t.RenderWith(AngleMark)
}

func (t Tape) String() string {
	return t.Render()
}

func AngleMark(s Symbol) string {
	return "<" + string(s) + ">"
}
