package cmds

import (
	"fmt"
	"os"
	"strings"
)

type Executor struct {
	commands   map[string]*Command
	positional func(string) error
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
	}

	usage := Func(func() {
		ret.PrintUsage()
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help")
	ret.Define("-h", usage)

	return ret
}

func (p *Executor) Define(name string, command *Command) {
	for _, name := range append([]string{name}, command.Aliases...) {
		if _, ok := p.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		p.commands[name] = command
	}
}

// Positional handles words that name no command and do not start with a dash.
func (p *Executor) Positional(fn func(string) error) {
	p.positional = fn
}

func (p *Executor) Execute(args []string) (err error) {
	for len(args) > 0 {
		word := args[0]
		args = args[1:]
		name := strings.TrimSpace(word)

		command, ok := p.commands[name]
		if !ok {
			if p.positional == nil || strings.HasPrefix(name, "-") {
				return fmt.Errorf("unknown command: %s", name)
			}
			if err := p.positional(word); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			continue
		}

		args, err = command.call(name, args)
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *Executor) MustExecute(args []string) {
	if err := p.Execute(args); err != nil {
		panic(err)
	}
}
