package turingconfigs

import (
	"time"

	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/logs"
	"github.com/samber/lo"
)

// Timeout bounds the wall time of one run. Zero means unbounded.
type Timeout time.Duration

var _ configs.Configurable = Timeout(0)

func (Timeout) ConfigExpr() string {
	return "timeout"
}

var timeoutFlag = cmds.Var[time.Duration]("-timeout")

func (Module) Timeout(
	loader configs.Loader,
	logger logs.Logger,
) Timeout {
	var fromConfig time.Duration
	if str := configs.First[string](loader, Timeout(0).ConfigExpr()); str != "" {
		d, err := time.ParseDuration(str)
		if err != nil {
			logger.Warn("bad timeout in config", "value", str, "error", err)
		} else {
			fromConfig = d
		}
	}
	return Timeout(lo.CoalesceOrEmpty(
		*timeoutFlag,
		fromConfig,
	))
}
