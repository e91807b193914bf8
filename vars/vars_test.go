package vars

import (
	"testing"
)

func TestStrToBool(t *testing.T) {
	for _, str := range []string{"true", "T", "yes", " y", "on", "1"} {
		if !StrToBool(str) {
			t.Fatalf("%q", str)
		}
	}
	for _, str := range []string{"false", "no", "0", "", "maybe"} {
		if StrToBool(str) {
			t.Fatalf("%q", str)
		}
	}
}
