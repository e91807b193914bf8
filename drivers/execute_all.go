package drivers

import (
	"context"
	"sync"

	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/simulators"
	"github.com/reusee/turing/syncs"
)

// ExecuteAll runs one machine against many inputs, at most parallel at a time.
// Results are in input order. observe may be called concurrently.
type ExecuteAll func(
	ctx context.Context,
	machine *machines.Machine,
	inputs []string,
	limits Limits,
	parallel int,
	observe func(i int, step simulators.Step),
) []Result

func (Module) ExecuteAll(
	execute Execute,
	newSpan logs.NewSpan,
) ExecuteAll {
	return func(
		ctx context.Context,
		machine *machines.Machine,
		inputs []string,
		limits Limits,
		parallel int,
		observe func(i int, step simulators.Step),
	) []Result {
		ctx, _ = newSpan(ctx, "", "batch",
			"machine", machine.Name(),
			"inputs", len(inputs),
			"parallel", parallel,
		)

		results := make([]Result, len(inputs))
		sem := syncs.NewSemaphore(parallel)
		var wg sync.WaitGroup
		for i, input := range inputs {
			sem.Acquire()
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer sem.Release()
				var observer Observer
				if observe != nil {
					observer = func(step simulators.Step) {
						observe(i, step)
					}
				}
				results[i] = execute(ctx, machine, input, limits, observer)
			}()
		}
		wg.Wait()

		return results
	}
}
