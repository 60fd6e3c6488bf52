package grid

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuild(t *testing.T) {
	g, err := Build([]string{"1.#", "", "+5"})
	if err != nil {
		t.Fatal(err)
	}
	want := Grid{
		{{Digit, '1'}, {Empty, '.'}, {Symbol, '#'}},
		{},
		{{Symbol, '+'}, {Digit, '5'}},
	}
	if diff := cmp.Diff(g, want); diff != "" {
		t.Errorf("Build mismatch (-got +want):\n%s", diff)
	}
}

func TestBuildSymbols(t *testing.T) {
	for _, ch := range "*#$+/=@%&-" {
		g, err := Build([]string{string(ch)})
		if err != nil {
			t.Fatalf("Build(%q): %s", ch, err)
		}
		if got := g[0][0]; got != (Cell{Symbol, ch}) {
			t.Errorf("Build(%q): got %v; want symbol", ch, got)
		}
	}
}

func TestBuildMalformed(t *testing.T) {
	for _, tt := range []struct {
		lines []string
		want  MalformedInputError
	}{
		{[]string{"a"}, MalformedInputError{0, 0, 'a'}},
		{[]string{"...", "..Z"}, MalformedInputError{1, 2, 'Z'}},
		{[]string{"12*", "é.x"}, MalformedInputError{1, 2, 'x'}},
	} {
		g, err := Build(tt.lines)
		if g != nil {
			t.Errorf("Build(%q): got non-nil grid on error", tt.lines)
		}
		var merr *MalformedInputError
		if !errors.As(err, &merr) {
			t.Errorf("Build(%q): got err %v; want *MalformedInputError", tt.lines, err)
			continue
		}
		if *merr != tt.want {
			t.Errorf("Build(%q): got %+v; want %+v", tt.lines, *merr, tt.want)
		}
	}
}

func TestReadRoundTrip(t *testing.T) {
	const input = "467..114..\n...*......\n..35..633.\n"
	g, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(g) != 3 {
		t.Fatalf("got %d rows; want 3", len(g))
	}
	if got := g.String(); got != input {
		t.Errorf("got %q; want %q", got, input)
	}
}

func TestReadNoTrailingNewline(t *testing.T) {
	g, err := Read(strings.NewReader("1.\r\n.2"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := g.String(), "1.\n.2\n"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}
