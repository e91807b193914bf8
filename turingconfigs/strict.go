package turingconfigs

import (
	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
)

// Strict rejects descriptions with duplicate (state, read) transitions.
type Strict bool

var _ configs.Configurable = Strict(false)

func (Strict) ConfigExpr() string {
	return "strict"
}

var strictFlag = cmds.Switch("-strict")

func (Module) Strict(
	loader configs.Loader,
) Strict {
	if *strictFlag {
		return true
	}
	// any config layer can demand it
	for strict := range configs.All[Strict](loader, Strict(false).ConfigExpr()) {
		if strict {
			return true
		}
	}
	return false
}
