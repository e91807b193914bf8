package tapes

import (
	"errors"
	"fmt"
)

type Direction uint8

const (
	Left Direction = iota + 1
	Right
)

var ErrUnknownDirection = errors.New("unknown direction")

func ParseDirection(str string) (Direction, error) {
	switch str {
	case "LEFT":
		return Left, nil
	case "RIGHT":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, str)
}

func (d Direction) Valid() bool {
	return d == Left || d == Right
}

func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	}
	panic(fmt.Errorf("%w: %d", ErrUnknownDirection, d))
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	}
	return fmt.Sprintf("Direction(%d)", d)
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, d)
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
