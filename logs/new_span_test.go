package logs

import (
	"bytes"
	"log/slog"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestNewSpan(t *testing.T) {
	Level.Set(slog.LevelInfo)
	defer Level.Set(slog.LevelWarn)
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
	) {
		ctx := context.Background()

		ctx1, span1 := newSpan(ctx, "", "batch", "inputs", 2)

		ctx11, span11 := newSpan(ctx1, "", "run", "input", "11+1")

		ctx12, span12 := newSpan(ctx11, span1, "run", "input", "1+1")
		_ = ctx12

		lines := strings.Split(buf.String(), "\n")
		if !strings.Contains(lines[0], "logs.span="+string(span1)) {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[0], "inputs=2") {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "logs.span="+string(span11)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[1], "input=11+1") {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[2], "logs.span="+string(span12)) {
			t.Fatalf("got %v", lines[2])
		}
		if !strings.Contains(lines[1], "parent="+string(span1)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[2], "parent="+string(span1)) {
			t.Fatalf("got %v", lines[2])
		}
		if !strings.Contains(lines[2], "creator="+string(span11)) {
			t.Fatalf("got %v", lines[2])
		}

		err := WrapSpan(ctx12, errors.New("boom"))
		if !strings.Contains(err.Error(), "span: "+string(span12)) {
			t.Fatalf("got %v", err)
		}
		if WrapSpan(ctx12, nil) != nil {
			t.Fatal()
		}
	})
}
