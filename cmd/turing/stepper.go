package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/turing/debugs"
	"github.com/reusee/turing/displays"
	"github.com/reusee/turing/drivers"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/simulators"
)

const stepperHelp = "<enter> step, c continue, t tap, q quit"

type stepper struct {
	ctx     context.Context
	cancel  context.CancelFunc
	lines   func() (string, error)
	printer *displays.Printer
	tap     debugs.Tap
	machine *machines.Machine
	input   string
	history []simulators.Step
	running bool
}

func (s *stepper) observe(step simulators.Step) {
	s.history = append(s.history, step)
	s.printer.Step(step)
	if s.running || step.Status.Halted() {
		return
	}
	for {
		line, err := s.lines()
		if err != nil {
			// ctrl-c or ctrl-d
			s.cancel()
			return
		}
		switch strings.TrimSpace(line) {
		case "", "s":
			return
		case "c":
			s.running = true
			return
		case "q":
			s.cancel()
			return
		case "t":
			s.tap(s.ctx, "step", debugs.RunGlobals(s.machine.Description(), drivers.Result{
				Input:   s.input,
				History: s.history,
				Last:    step,
				Final:   step.Configuration,
			}))
		default:
			fmt.Fprintln(os.Stderr, stepperHelp)
		}
	}
}

func stepRun(
	ctx context.Context,
	machine *machines.Machine,
	input string,
	limits drivers.Limits,
	execute drivers.Execute,
	printer *displays.Printer,
	tap debugs.Tap,
) drivers.Result {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".turing_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "step> ",
		HistoryFile: historyFile,
	})
	ce(err)
	defer rl.Close()
	fmt.Fprintln(os.Stderr, stepperHelp)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s := &stepper{
		ctx:     ctx,
		cancel:  cancel,
		lines:   rl.Readline,
		printer: printer,
		tap:     tap,
		machine: machine,
		input:   input,
	}
	return execute(ctx, machine, input, limits, s.observe)
}
