package turingconfigs

import (
	"runtime"

	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
	"github.com/samber/lo"
)

type Parallel int

var _ configs.Configurable = Parallel(0)

func (Parallel) ConfigExpr() string {
	return "parallel"
}

var parallelFlag = cmds.Var[int]("-parallel")

func (Module) Parallel(
	loader configs.Loader,
) Parallel {
	return max(1, lo.CoalesceOrEmpty(
		Parallel(*parallelFlag),
		configs.Lookup[Parallel](loader),
		Parallel(runtime.NumCPU()),
	))
}
