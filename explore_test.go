package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cespare/advent2023/schematic"
)

func newTestExplorer(t *testing.T) (*explorer, *bytes.Buffer) {
	t.Helper()
	s, g, err := loadSchematic([]byte(day3Example))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	return &explorer{s: s, g: g, w: &buf}, &buf
}

func TestExplorerExec(t *testing.T) {
	for _, tt := range []struct {
		line string
		want string
	}{
		{"at 0,0", "(0,0): #1:467\n"},
		{"at 0, 3", "(0,3): empty\n"},
		{"  at -1,-1  ", "(-1,-1): empty\n"},
		{"adj 1,3", "#3:*: #1:467 #4:35 #4:35\n"},
		{"adj 9,9", "(9,9): empty\n"},
		{"pos 1", "(0,0) (0,1) (0,2)\n"},
		{"pos 3", "(1,3)\n"},
		{"", ""},
		{"show", day3Example},
	} {
		x, buf := newTestExplorer(t)
		quit, err := x.exec(tt.line)
		if err != nil {
			t.Errorf("exec(%q): %s", tt.line, err)
			continue
		}
		if quit {
			t.Errorf("exec(%q): got quit", tt.line)
		}
		if got := buf.String(); got != tt.want {
			t.Errorf("exec(%q): got %q; want %q", tt.line, got, tt.want)
		}
	}
}

func TestExplorerQuit(t *testing.T) {
	x, _ := newTestExplorer(t)
	for _, line := range []string{"quit", "exit"} {
		quit, err := x.exec(line)
		if err != nil || !quit {
			t.Errorf("exec(%q): got (%t, %v); want (true, nil)", line, quit, err)
		}
	}
}

func TestExplorerErrors(t *testing.T) {
	x, _ := newTestExplorer(t)
	for _, line := range []string{
		"at 3",
		"at x,1",
		"adj 1,y",
		"pos",
		"pos 99",
		"pos -1",
		"frobnicate",
	} {
		if _, err := x.exec(line); err == nil {
			t.Errorf("exec(%q): got nil error", line)
		}
	}
}

func TestParsePosition(t *testing.T) {
	p, err := parsePosition(" 4 , 7")
	if err != nil {
		t.Fatal(err)
	}
	if want := (schematic.Position{Row: 4, Col: 7}); p != want {
		t.Errorf("got %v; want %v", p, want)
	}

	_, err = parsePosition("4 7")
	if !errors.Is(err, errMissingDelimiter) {
		t.Errorf("got err %v; want errMissingDelimiter", err)
	}
}
