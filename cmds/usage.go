package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

const usageWidth = 72

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

// WriteUsage lists commands sorted by name, aliases folded into their command.
func (p *Executor) WriteUsage(w io.Writer) {
	for _, name := range slices.Sorted(maps.Keys(p.commands)) {
		command := p.commands[name]
		if slices.Contains(command.Aliases, name) {
			continue
		}

		line := name
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		fnType := command.Func.Type()
		for i := range fnType.NumIn() {
			line += fmt.Sprintf(" <%v>", fnType.In(i))
		}
		fmt.Fprintln(w, line)

		if command.Description != "" {
			desc := wordwrap.WrapString(command.Description, usageWidth)
			for l := range strings.SplitSeq(desc, "\n") {
				fmt.Fprintln(w, "    "+l)
			}
		}
	}
}
