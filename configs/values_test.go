package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)

	str := First[string](loader, "str")
	if str != "bar" {
		t.Fatalf("got %v", str)
	}

	if n := First[int](loader, "not"); n != 0 {
		t.Fatalf("got %v", n)
	}
}

type maxSteps int

func (maxSteps) ConfigExpr() string {
	return "max_steps"
}

func TestLookup(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)
	if n := Lookup[maxSteps](loader); n != 1000 {
		t.Fatalf("got %v", n)
	}
	loader = NewLoader([]string{"testdata/test2.cue"}, testSchema)
	if n := Lookup[maxSteps](loader); n != 0 {
		t.Fatalf("got %v", n)
	}
}
