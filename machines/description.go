package machines

import (
	"unicode/utf8"

	"github.com/reusee/turing/tapes"
)

type StateName string

type Transition struct {
	Read    string          `json:"read" yaml:"read" toml:"read"`
	ToState StateName       `json:"to_state" yaml:"to_state" toml:"to_state"`
	Write   string          `json:"write" yaml:"write" toml:"write"`
	Action  tapes.Direction `json:"action" yaml:"action" toml:"action"`
}

func (t Transition) ReadSymbol() tapes.Symbol {
	return toSymbol(t.Read)
}

func (t Transition) WriteSymbol() tapes.Symbol {
	return toSymbol(t.Write)
}

type Description struct {
	Name        string                     `json:"name" yaml:"name" toml:"name"`
	Alphabet    []string                   `json:"alphabet" yaml:"alphabet" toml:"alphabet"`
	Blank       string                     `json:"blank" yaml:"blank" toml:"blank"`
	States      []StateName                `json:"states" yaml:"states" toml:"states"`
	Initial     StateName                  `json:"initial" yaml:"initial" toml:"initial"`
	Finals      []StateName                `json:"finals" yaml:"finals" toml:"finals"`
	Transitions map[StateName][]Transition `json:"transitions" yaml:"transitions" toml:"transitions"`
}

func (d *Description) BlankSymbol() tapes.Symbol {
	return toSymbol(d.Blank)
}

func toSymbol(str string) tapes.Symbol {
	r, _ := utf8.DecodeRuneInString(str)
	return tapes.Symbol(r)
}
