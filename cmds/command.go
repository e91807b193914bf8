package cmds

import (
	"fmt"
	"reflect"
)

// Command is a named word on the command line. Its function receives the
// following words as arguments, converted to the parameter types.
type Command struct {
	Func        reflect.Value
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Func wraps fn, which returns nothing or an error.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	fnType := fnValue.Type()
	switch {
	case fnType.NumOut() > 1,
		fnType.NumOut() == 1 && fnType.Out(0) != errorType:
		panic(fmt.Errorf("must return nothing or error, got %v", fnType))
	}
	return &Command{
		Func: fnValue,
	}
}

func (c *Command) call(name string, args []string) (rest []string, err error) {
	fnType := c.Func.Type()
	callArgs := make([]reflect.Value, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		value, err := parseArg(fnType.In(i), args)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if len(args) > 0 {
			args = args[1:]
		}
		callArgs = append(callArgs, value)
	}
	rets := c.Func.Call(callArgs)
	if len(rets) > 0 {
		if err, ok := rets[0].Interface().(error); ok && err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return args, nil
}
