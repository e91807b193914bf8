package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/debugs"
	"github.com/reusee/turing/displays"
	"github.com/reusee/turing/drivers"
	"github.com/reusee/turing/loaders"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/modes"
	"github.com/reusee/turing/turingconfigs"
)

var (
	fileFlag  = cmds.Var[string]("-file")
	inputFlag = cmds.Collect[string]("-input")
	quietFlag = cmds.Switch("-quiet")
	stepFlag  = cmds.Switch("-step")
	tapFlag   = cmds.Switch("-tap")
)

var errNoInput = errors.New("no input")

func init() {
	// turing <file> <input>...
	cmds.Positional(func(word string) error {
		if *fileFlag == "" {
			*fileFlag = word
			return nil
		}
		*inputFlag = append(*inputFlag, word)
		return nil
	})
}

type options struct {
	file   string
	inputs []string
	quiet  bool
	step   bool
	tap    bool
}

func main() {
	cmds.Execute(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	code := 1
	func() {
		defer func() {
			if p := recover(); p != nil {
				err, ok := p.(error)
				if !ok {
					panic(p)
				}
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
		}()
		code = run(ctx, scope, options{
			file:   *fileFlag,
			inputs: *inputFlag,
			quiet:  *quietFlag,
			step:   *stepFlag,
			tap:    *tapFlag,
		})
	}()

	stop()
	os.Exit(code)
}

func run(ctx context.Context, scope dscope.Scope, opts options) (code int) {
	if opts.file == "" {
		ce(fmt.Errorf("-file: %w", errNoInput))
	}
	if len(opts.inputs) == 0 {
		ce(fmt.Errorf("-input: %w", errNoInput))
	}

	scope.Call(func(
		load loaders.Load,
		logger logs.Logger,
		printer *displays.Printer,
		execute drivers.Execute,
		executeAll drivers.ExecuteAll,
		tap debugs.Tap,
		interactive modes.Interactive,
		maxSteps turingconfigs.MaxSteps,
		timeout turingconfigs.Timeout,
		parallel turingconfigs.Parallel,
		strict turingconfigs.Strict,
	) {

		description, err := load(ctx, opts.file)
		ce(err)
		machine, err := machines.Compile(description, bool(strict))
		ce(err)
		for _, dup := range machines.Duplicates(description) {
			logger.Warn("shadowed transition",
				"state", dup.State,
				"read", dup.Read,
				"index", dup.Index,
				"shadowed_by", dup.ShadowedBy,
			)
		}

		if !opts.quiet {
			printer.Banner(description)
		}

		inputs := make([]string, 0, len(opts.inputs))
		for _, input := range opts.inputs {
			inputs = append(inputs, loaders.NormalizeInput(input))
		}

		limits := drivers.Limits{
			MaxSteps:    int(maxSteps),
			Timeout:     time.Duration(timeout),
			KeepHistory: opts.tap || (!opts.quiet && len(inputs) > 1),
		}

		var results []drivers.Result
		switch {

		case opts.step && len(inputs) == 1 && bool(interactive):
			limits.KeepHistory = true
			results = []drivers.Result{
				stepRun(ctx, machine, inputs[0], limits, execute, printer, tap),
			}
			printer.Result(results[0])

		case len(inputs) == 1:
			if opts.step {
				logger.Warn("stepping needs one input and a terminal")
			}
			var observe drivers.Observer
			if !opts.quiet {
				observe = printer.Step
			}
			results = []drivers.Result{
				execute(ctx, machine, inputs[0], limits, observe),
			}
			printer.Result(results[0])

		default:
			if opts.step {
				logger.Warn("stepping needs one input and a terminal")
			}
			results = executeAll(ctx, machine, inputs, limits, int(parallel), nil)
			for _, result := range results {
				if !opts.quiet {
					for _, step := range result.History {
						printer.Step(step)
					}
				}
				printer.Result(result)
			}

		}

		if opts.tap {
			for _, result := range results {
				tap(ctx, result.Input, debugs.RunGlobals(description, result))
			}
		}

		code = exitCode(results)
	})

	return
}

// exitCode is 0 when every run accepts, 1 on invalid input, 2 otherwise.
func exitCode(results []drivers.Result) int {
	code := 0
	for _, result := range results {
		switch result.Outcome {
		case drivers.Accepted:
		case drivers.Invalid:
			return 1
		default:
			code = 2
		}
	}
	return code
}
