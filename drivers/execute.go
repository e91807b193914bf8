package drivers

import (
	"context"
	"time"

	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/simulators"
)

// Limits bound a run. Zero values mean unbounded.
type Limits struct {
	MaxSteps    int
	Timeout     time.Duration
	KeepHistory bool
}

type Result struct {
	Span    logs.Span
	Input   string
	Outcome Outcome
	// set when Outcome is Invalid or Cancelled
	Err error
	// every step yielded, when Limits.KeepHistory is set
	History []simulators.Step
	// last step yielded
	Last simulators.Step
	// configuration when the run stopped
	Final simulators.Configuration
}

// Observer sees every step of a run as it is produced.
type Observer func(step simulators.Step)

type Execute func(
	ctx context.Context,
	machine *machines.Machine,
	input string,
	limits Limits,
	observe Observer,
) Result

func (Module) Execute(
	logger logs.Logger,
	newSpan logs.NewSpan,
) Execute {
	return func(
		ctx context.Context,
		machine *machines.Machine,
		input string,
		limits Limits,
		observe Observer,
	) (result Result) {
		ctx, result.Span = newSpan(ctx, "", "run",
			"machine", machine.Name(),
			"input", input,
		)
		result.Input = input

		sim, err := simulators.New(machine, input)
		if err != nil {
			logger.WarnContext(ctx, "invalid input", "error", err)
			result.Outcome = Invalid
			result.Err = logs.WrapSpan(ctx, err)
			return
		}

		if limits.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, limits.Timeout)
			defer cancel()
		}

		started := time.Now()
		defer func() {
			result.Final = sim.Configuration()
			logger.InfoContext(ctx, "run finished",
				"outcome", result.Outcome,
				"state", result.Final.State,
				"steps", result.Final.Steps,
				"duration", time.Since(started),
			)
		}()

		for step := range sim.Run {
			result.Last = step
			if limits.KeepHistory {
				result.History = append(result.History, step)
			}
			if observe != nil {
				observe(step)
			}

			switch step.Status {
			case simulators.Accepted:
				result.Outcome = Accepted
				return
			case simulators.Rejected:
				result.Outcome = Rejected
				return
			}

			// a halt applies no transition, so it is still reached at the cap
			if limits.MaxSteps > 0 && step.Steps+1 >= limits.MaxSteps &&
				!haltsNext(machine, sim.Configuration()) {
				result.Outcome = StepLimit
				return
			}

			select {
			case <-ctx.Done():
				result.Outcome = Cancelled
				result.Err = logs.WrapSpan(ctx, ctx.Err())
				return
			default:
			}
		}

		return
	}
}

func haltsNext(machine *machines.Machine, c simulators.Configuration) bool {
	if machine.IsFinal(c.State) {
		return true
	}
	_, ok := machine.Lookup(c.State, c.Tape.Read())
	return !ok
}
