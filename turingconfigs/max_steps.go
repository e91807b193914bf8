package turingconfigs

import (
	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
	"github.com/samber/lo"
)

// MaxSteps caps applied transitions per run. Zero means unbounded.
type MaxSteps int

var _ configs.Configurable = MaxSteps(0)

func (MaxSteps) ConfigExpr() string {
	return "max_steps"
}

const DefaultMaxSteps = 1_000_000

var maxStepsFlag = cmds.Var[int]("-max-steps")

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	if *maxStepsFlag < 0 {
		// explicit -1 disables the cap
		return 0
	}
	return lo.CoalesceOrEmpty(
		MaxSteps(*maxStepsFlag),
		configs.Lookup[MaxSteps](loader),
		DefaultMaxSteps,
	)
}
