package cmds

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("-steps", Func(func() {
		a = 42
	}))
	executor.Define("-max-steps", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"-steps",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"-max-steps", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

}

func TestPositional(t *testing.T) {
	executor := NewExecutor()
	var file string
	var inputs []string
	executor.Define("-quiet", Func(func() {}))
	executor.Positional(func(word string) error {
		if word == "bad" {
			return errors.New("rejected")
		}
		if file == "" {
			file = word
			return nil
		}
		inputs = append(inputs, word)
		return nil
	})

	if err := executor.Execute([]string{
		"unary_add.json", "-quiet", "11+1", " 1",
	}); err != nil {
		t.Fatal(err)
	}
	if file != "unary_add.json" {
		t.Fatalf("got %s", file)
	}
	if len(inputs) != 2 || inputs[0] != "11+1" || inputs[1] != " 1" {
		t.Fatalf("got %q", inputs)
	}

	err := executor.Execute([]string{"-nope"})
	if err == nil || err.Error() != "unknown command: -nope" {
		t.Fatalf("got %v", err)
	}
	err = executor.Execute([]string{"bad"})
	if err == nil || err.Error() != "bad: rejected" {
		t.Fatalf("got %v", err)
	}
}

func TestArgumentErrors(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-n", Func(func(int8) {}))
	executor.Define("-ch", Func(func(chan int) {}))
	for expected, args := range map[string][]string{
		"-n: expecting argument, got nothing": {"-n"},
		"-n: convert 300 to int":             {"-n", "300"},
		"-ch: unsupported type: chan int":    {"-ch", "x"},
	} {
		err := executor.Execute(args)
		if err == nil || !strings.HasPrefix(err.Error(), expected) {
			t.Fatalf("got %v", err)
		}
	}
}

func TestDuplicatedCommand(t *testing.T) {
	executor := NewExecutor()
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	executor.Define("help", Func(func() {}))
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	err := executor.Execute([]string{"foo", "42", "foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatal()
	}
	if s != "foo" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo", "99"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 99 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

}

func TestDurationArgument(t *testing.T) {
	executor := NewExecutor()
	var timeout time.Duration
	executor.Define("-timeout", Func(func(d time.Duration) {
		timeout = d
	}))
	if err := executor.Execute([]string{"-timeout", "1m30s"}); err != nil {
		t.Fatal(err)
	}
	if timeout != 90*time.Second {
		t.Fatalf("got %v", timeout)
	}
	err := executor.Execute([]string{"-timeout", "soon"})
	if !strings.Contains(err.Error(), "-timeout: convert soon to duration") {
		t.Fatalf("got %v", err)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-fail", Func(func() error {
		return errors.New("boom")
	}))
	executor.Define("-ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"-ok"}); err != nil {
		t.Fatal(err)
	}
	err := executor.Execute([]string{"-ok", "-fail"})
	if err == nil || err.Error() != "-fail: boom" {
		t.Fatalf("got %v", err)
	}
}
