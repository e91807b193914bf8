package loaders

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/modes"
	"github.com/reusee/turing/nets"
	"github.com/reusee/turing/simulators"
)

func testScope(t *testing.T) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
		new(nets.Module),
		new(logs.Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	)
}

func runToHalt(t *testing.T, d *machines.Description, input string) simulators.Step {
	m, err := machines.Compile(d, true)
	if err != nil {
		t.Fatal(err)
	}
	sim, err := simulators.New(m, input)
	if err != nil {
		t.Fatal(err)
	}
	var last simulators.Step
	for step := range sim.Run {
		last = step
		if step.Steps > 10000 {
			t.Fatal("not halting")
		}
	}
	return last
}

func TestLoadFormats(t *testing.T) {
	testCases := []struct {
		file     string
		name     string
		input    string
		contents string
		steps    int
	}{
		{"unary_add.json", "unary_add", "11+111", "11111", 14},
		{"unary_add.cue", "unary_add", "11+111", "11111", 14},
		{"unary_add.cue", "unary_add", "+", "", 4},
		{"unary_sub.yaml", "unary_sub", "111-11=", "1", 22},
		{"palindrome.toml", "palindrome", "abba", "y", 15},
		{"palindrome.toml", "palindrome", "abab", "ban", 6},
		{"palindrome.toml", "palindrome", "", "y", 1},
		{"02n.json", "02n", "000", "000n", 4},
		{"02n.json", "02n", "0000", "0000y", 5},
		{"0n1n.json", "0n1n", "0011", "y", 15},
		{"0n1n.json", "0n1n", "001", "n", 10},
	}

	testScope(t).Call(func(
		load Load,
	) {
		for _, tc := range testCases {
			t.Run(tc.file+"/"+tc.input, func(t *testing.T) {
				d, err := load(t.Context(), "testdata/"+tc.file)
				if err != nil {
					t.Fatal(err)
				}
				if d.Name != tc.name {
					t.Fatalf("got %q", d.Name)
				}
				last := runToHalt(t, d, tc.input)
				if last.Status != simulators.Accepted {
					t.Fatalf("got %v", last.Status)
				}
				if got := last.Tape.Contents(); got != tc.contents {
					t.Fatalf("got %q, want %q", got, tc.contents)
				}
				if last.Steps != tc.steps {
					t.Fatalf("got %d steps, want %d", last.Steps, tc.steps)
				}
			})
		}
	})
}

func TestLoadErrors(t *testing.T) {
	testScope(t).Call(func(
		load Load,
	) {
		for _, file := range []string{
			"bad_action.json",
			"bad_action.yaml",
			"unknown_field.json",
			"unknown_field.yaml",
			"unknown_field.toml",
		} {
			_, err := load(t.Context(), "testdata/"+file)
			if !errors.Is(err, ErrDecode) {
				t.Fatalf("%s: got %v", file, err)
			}
		}

		_, err := load(t.Context(), "testdata/machine.txt")
		if !errors.Is(err, ErrUnknownFormat) {
			t.Fatalf("got %v", err)
		}

		_, err = load(t.Context(), "testdata/missing.json")
		if err == nil {
			t.Fatal("should error")
		}
	})
}

func TestLoadURL(t *testing.T) {
	content, err := os.ReadFile("testdata/unary_add.json")
	if err != nil {
		t.Fatal(err)
	}
	mux := http.NewServeMux()
	mux.Handle("/machines/", http.StripPrefix("/machines/", http.FileServer(http.Dir("testdata"))))
	mux.HandleFunc("/api/machine", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(content)
	})
	mux.HandleFunc("/api/unknown", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write(content)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	testScope(t).Call(func(
		load Load,
	) {
		for _, path := range []string{
			"/machines/unary_add.json",
			"/machines/unary_sub.yaml",
			"/machines/palindrome.toml",
			"/api/machine",
		} {
			d, err := load(t.Context(), server.URL+path)
			if err != nil {
				t.Fatalf("%s: %v", path, err)
			}
			if err := machines.ValidateDescription(d); err != nil {
				t.Fatalf("%s: %v", path, err)
			}
		}

		_, err := load(t.Context(), server.URL+"/api/unknown")
		if !errors.Is(err, ErrUnknownFormat) {
			t.Fatalf("got %v", err)
		}

		_, err = load(t.Context(), server.URL+"/machines/missing.json")
		if err == nil {
			t.Fatal("should error")
		}
	})
}

func TestNormalize(t *testing.T) {
	decomposed := "e\u0301"
	composed := "\u00e9"
	d, err := Decode("accent.yaml", FormatYAML, []byte(`
name: accent
alphabet: ["`+decomposed+`", "."]
blank: "."
states: [s0, HALT]
initial: s0
finals: [HALT]
transitions:
  s0:
    - {read: "`+decomposed+`", to_state: HALT, write: ".", action: RIGHT}
`))
	if err != nil {
		t.Fatal(err)
	}
	if d.Alphabet[0] != composed {
		t.Fatalf("got %q", d.Alphabet[0])
	}
	if d.Transitions["s0"][0].Read != composed {
		t.Fatalf("got %q", d.Transitions["s0"][0].Read)
	}
	if err := machines.ValidateDescription(d); err != nil {
		t.Fatal(err)
	}
	last := runToHalt(t, d, NormalizeInput(decomposed))
	if last.Status != simulators.Accepted || last.Steps != 1 {
		t.Fatalf("got %+v", last)
	}
}

func TestNormalizeMergeOrder(t *testing.T) {
	decomposed := "e\u0301"
	composed := "\u00e9"
	content := []byte(`
name: merge
alphabet: ["1", "."]
blank: "."
states: ["` + composed + `", H1, H2]
initial: "` + composed + `"
finals: [H1, H2]
transitions:
  "` + composed + `":
    - {read: "1", to_state: H2, write: "1", action: RIGHT}
  "` + decomposed + `":
    - {read: "1", to_state: H1, write: "1", action: RIGHT}
`)
	for range 50 {
		d, err := Decode("merge.yaml", FormatYAML, content)
		if err != nil {
			t.Fatal(err)
		}
		list := d.Transitions[machines.StateName(composed)]
		if len(d.Transitions) != 1 || len(list) != 2 {
			t.Fatalf("got %+v", d.Transitions)
		}
		// the decomposed spelling sorts first
		if list[0].ToState != "H1" || list[1].ToState != "H2" {
			t.Fatalf("got %+v", list)
		}
	}
}

func TestFormatOf(t *testing.T) {
	testCases := []struct {
		name        string
		contentType string
		expect      Format
	}{
		{"a.json", "", FormatJSON},
		{"a.JSON", "", FormatJSON},
		{"a.cue", "", FormatCUE},
		{"a.yml", "", FormatYAML},
		{"a.yaml", "text/plain", FormatYAML},
		{"a.toml", "", FormatTOML},
		{"/api/machine", "application/json", FormatJSON},
		{"/api/machine", "application/x-yaml", FormatYAML},
		{"/api/machine", "application/toml", FormatTOML},
	}
	for _, tc := range testCases {
		format, err := FormatOf(tc.name, tc.contentType)
		if err != nil {
			t.Fatal(err)
		}
		if format != tc.expect {
			t.Fatalf("%s: got %v", tc.name, format)
		}
	}
	if _, err := FormatOf("a.txt", ""); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("got %v", err)
	}
	if _, err := Decode("a", Format("xml"), nil); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("got %v", err)
	}
}
