package cmds

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/reusee/turing/vars"
)

var (
	errorType    = reflect.TypeFor[error]()
	durationType = reflect.TypeFor[time.Duration]()
)

type argParser func(str string, value reflect.Value) error

var parsersByKind = map[reflect.Kind]argParser{
	reflect.Bool: func(str string, value reflect.Value) error {
		value.SetBool(vars.StrToBool(str))
		return nil
	},
	reflect.Int:     parseInt,
	reflect.Int8:    parseInt,
	reflect.Int16:   parseInt,
	reflect.Int32:   parseInt,
	reflect.Int64:   parseInt,
	reflect.Uint:    parseUint,
	reflect.Uint8:   parseUint,
	reflect.Uint16:  parseUint,
	reflect.Uint32:  parseUint,
	reflect.Uint64:  parseUint,
	reflect.Float32: parseFloat,
	reflect.Float64: parseFloat,
	reflect.String: func(str string, value reflect.Value) error {
		value.SetString(str)
		return nil
	},
}

func parseInt(str string, value reflect.Value) error {
	v, err := strconv.ParseInt(str, 10, value.Type().Bits())
	if err != nil {
		return fmt.Errorf("convert %s to int: %w", str, err)
	}
	value.SetInt(v)
	return nil
}

func parseUint(str string, value reflect.Value) error {
	v, err := strconv.ParseUint(str, 10, value.Type().Bits())
	if err != nil {
		return fmt.Errorf("convert %s to unsigned int: %w", str, err)
	}
	value.SetUint(v)
	return nil
}

func parseFloat(str string, value reflect.Value) error {
	v, err := strconv.ParseFloat(str, value.Type().Bits())
	if err != nil {
		return fmt.Errorf("convert %s to float: %w", str, err)
	}
	value.SetFloat(v)
	return nil
}

func parseDuration(str string, value reflect.Value) error {
	d, err := time.ParseDuration(str)
	if err != nil {
		return fmt.Errorf("convert %s to duration: %w", str, err)
	}
	value.SetInt(int64(d))
	return nil
}

// parseArg converts the first word of args to t.
// A pointer parameter is optional and becomes a pointer to zero when args is empty.
func parseArg(t reflect.Type, args []string) (reflect.Value, error) {
	if t.Kind() == reflect.Pointer {
		if len(args) == 0 {
			return reflect.New(t.Elem()), nil
		}
		elem, err := parseArg(t.Elem(), args)
		if err != nil {
			return reflect.Value{}, err
		}
		return elem.Addr(), nil
	}

	if len(args) == 0 {
		return reflect.Value{}, fmt.Errorf("expecting argument, got nothing")
	}

	parse, ok := parsersByKind[t.Kind()]
	if t == durationType {
		parse, ok = parseDuration, true
	}
	if !ok {
		return reflect.Value{}, fmt.Errorf("unsupported type: %v", t)
	}

	value := reflect.New(t).Elem()
	if err := parse(args[0], value); err != nil {
		return reflect.Value{}, err
	}
	return value, nil
}
