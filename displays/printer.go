package displays

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/reusee/turing/drivers"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/simulators"
	"github.com/reusee/turing/tapes"
	"golang.org/x/term"
)

// Output receives rendered traces.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}

type Printer struct {
	w    io.Writer
	mark func(tapes.Symbol) string
}

func NewPrinter(w io.Writer, color bool) *Printer {
	mark := tapes.AngleMark
	if color {
		mark = colorMark
	}
	return &Printer{
		w:    w,
		mark: mark,
	}
}

func (Module) Printer(
	output Output,
) *Printer {
	color := false
	if f, ok := output.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	return NewPrinter(output, color)
}

func colorMark(s tapes.Symbol) string {
	return "\033[1;31m<" + string(s) + ">\033[0m"
}

const bannerWidth = 80

func (p *Printer) Banner(d *machines.Description) {
	rule := strings.Repeat("*", bannerWidth)
	empty := "*" + strings.Repeat(" ", bannerWidth-2) + "*"
	fmt.Fprintln(p.w, rule)
	fmt.Fprintln(p.w, empty)
	fmt.Fprintln(p.w, center(d.Name, bannerWidth))
	fmt.Fprintln(p.w, empty)
	fmt.Fprintln(p.w, rule)

	fmt.Fprintf(p.w, "Alphabet: [ %s ]\n", strings.Join(d.Alphabet, ", "))
	fmt.Fprintf(p.w, "States  : [ %s ]\n", joinStates(d.States))
	fmt.Fprintf(p.w, "Initial : %s\n", d.Initial)
	fmt.Fprintf(p.w, "Finals  : [ %s ]\n", joinStates(d.Finals))

	// declared state order first, then anything the table adds
	printed := make(map[machines.StateName]bool)
	printState := func(state machines.StateName) {
		if printed[state] {
			return
		}
		printed[state] = true
		for _, t := range d.Transitions[state] {
			fmt.Fprintf(p.w, "(%s, %s) -> %s\n", state, t.Read, formatTransition(t))
		}
	}
	for _, state := range d.States {
		printState(state)
	}
	for _, state := range slices.Sorted(maps.Keys(d.Transitions)) {
		printState(state)
	}

	fmt.Fprintln(p.w, rule)
}

// center boxes str in width columns, counting runes.
func center(str string, width int) string {
	inner := width - 2
	runes := []rune(str)
	if len(runes) >= inner {
		return "*" + string(runes[:inner]) + "*"
	}
	left := (inner - len(runes)) / 2
	right := inner - len(runes) - left
	return "*" + strings.Repeat(" ", left) + str + strings.Repeat(" ", right) + "*"
}

func joinStates(states []machines.StateName) string {
	strs := make([]string, len(states))
	for i, s := range states {
		strs[i] = string(s)
	}
	return strings.Join(strs, ", ")
}

func formatTransition(t machines.Transition) string {
	return fmt.Sprintf("(%s, %s, %s)", t.ToState, t.Write, t.Action)
}

// Step prints one configuration line.
func (p *Printer) Step(step simulators.Step) {
	tape := step.Tape.RenderWith(p.mark)
	switch step.Status {
	case simulators.Running:
		fmt.Fprintf(p.w, "%s (%s, %s) -> %s\n",
			tape, step.State, step.Read(), formatTransition(*step.Transition))
	case simulators.Accepted:
		fmt.Fprintf(p.w, "%s (%s) %s\n", tape, step.State, step.Status)
	case simulators.Rejected:
		fmt.Fprintf(p.w, "%s (%s, %s) %s: no transition\n", tape, step.State, step.Read(), step.Status)
	}
}

// Result prints the closing line of a run.
func (p *Printer) Result(result drivers.Result) {
	switch result.Outcome {
	case drivers.Invalid:
		fmt.Fprintf(p.w, "%q: %s: %v\n", result.Input, result.Outcome, result.Err)
	case drivers.StepLimit, drivers.Cancelled:
		fmt.Fprintf(p.w, "%s (%s) %s after %d steps\n",
			result.Final.Tape.RenderWith(p.mark), result.Final.State, result.Outcome, result.Final.Steps)
	default:
		fmt.Fprintf(p.w, "%q: %s in %d steps, tape %q\n",
			result.Input, result.Outcome, result.Final.Steps, result.Final.Tape.Contents())
	}
}
