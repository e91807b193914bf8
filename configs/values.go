package configs

import (
	"errors"
	"iter"
)

// First decodes the value at path from the most specific source defining it.
// Missing values decode as zero. Other errors panic.
func First[T any](loader Loader, path string) (value T) {
	err := loader.AssignFirst(path, &value)
	if errors.Is(err, ErrValueNotFound) {
		return
	}
	if err != nil {
		panic(err)
	}
	return
}

// All decodes the value at path from every source defining it, most specific first.
func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for cueValue, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(err)
			}
			var value T
			if err := cueValue.Decode(&value); err != nil {
				panic(err)
			}
			if !yield(value) {
				return
			}
		}
	}
}
