package debugs

import (
	"os"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/drivers"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/simulators"
	"github.com/reusee/turing/tapes"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
	"golang.org/x/term"
)

func testResult(t *testing.T) (*machines.Description, drivers.Result) {
	d := &machines.Description{
		Name:     "flip",
		Alphabet: []string{"0", "1", "."},
		Blank:    ".",
		States:   []machines.StateName{"flip", "HALT"},
		Initial:  "flip",
		Finals:   []machines.StateName{"HALT"},
		Transitions: map[machines.StateName][]machines.Transition{
			"flip": {
				{Read: "0", ToState: "flip", Write: "1", Action: tapes.Right},
				{Read: "1", ToState: "flip", Write: "0", Action: tapes.Right},
				{Read: ".", ToState: "HALT", Write: ".", Action: tapes.Left},
			},
		},
	}
	m, err := machines.Compile(d, true)
	if err != nil {
		t.Fatal(err)
	}
	sim, err := simulators.New(m, "01")
	if err != nil {
		t.Fatal(err)
	}
	result := drivers.Result{
		Input:   "01",
		Outcome: drivers.Accepted,
	}
	for step := range sim.Run {
		result.History = append(result.History, step)
	}
	result.Final = sim.Configuration()
	return d, result
}

func TestRunGlobals(t *testing.T) {
	d, result := testResult(t)
	globals := Globals(RunGlobals(d, result))

	thread := &starlark.Thread{Name: "test"}
	value, err := starlark.EvalOptions(&syntax.FileOptions{}, thread, "test", `(
		outcome,
		count,
		state(0),
		tape(3),
		tape(99),
		final["Tape"],
		history[1]["Transition"]["Action"],
		history[3]["Transition"],
		machine["Transitions"]["flip"][2]["ToState"],
		error,
	)`, globals)
	if err != nil {
		t.Fatal(err)
	}
	expected := `("ACCEPT", 4, "flip", "[.1<0>..........]", "", "[.1<0>..........]", "RIGHT", None, "HALT", None)`
	if value.String() != expected {
		t.Fatalf("got %s", value.String())
	}
}

func TestTap(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		t.Skip("interactive stdin")
	}
	d, result := testResult(t)
	dscope.New(
		new(Module),
		new(logs.Module),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", RunGlobals(d, result))
	})
}
