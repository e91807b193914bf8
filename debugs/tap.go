package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/turing/drivers"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin with globals bound.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: what,
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, Globals(globals))
	}
}

// Globals converts go values to starlark globals.
func Globals(globals map[string]any) starlark.StringDict {
	mappings := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		mappings[name] = toStarlarkValue(value)
	}
	return mappings
}

// RunGlobals exposes a finished run for inspection.
func RunGlobals(d *machines.Description, result drivers.Result) map[string]any {
	return map[string]any{
		"machine": d,
		"input":   result.Input,
		"outcome": result.Outcome,
		"error":   result.Err,
		"final":   result.Final,
		"history": result.History,
		"count":   len(result.History),
		// tape of the nth recorded step
		"tape": func(n int) string {
			if n < 0 || n >= len(result.History) {
				return ""
			}
			return result.History[n].Tape.Render()
		},
		// state of the nth recorded step
		"state": func(n int) string {
			if n < 0 || n >= len(result.History) {
				return ""
			}
			return string(result.History[n].State)
		},
	}
}
