package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/advent2023/grid"
	"github.com/cespare/advent2023/schematic"
	"github.com/chzyer/readline"
)

func init() {
	register("3x", "explore a schematic interactively (args: input file)", day3x)
}

func day3x(args []string) error {
	if len(args) != 1 {
		return errors.New("need 1 arg (input file)")
	}
	input, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	s, g, err := loadSchematic(input)
	if err != nil {
		return err
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:      "3x> ",
		HistoryFile: filepath.Join(os.TempDir(), "advent-3x.txt"),
	})
	if err != nil {
		return err
	}
	defer l.Close()

	x := &explorer{s: s, g: g, w: l.Stdout()}
	fmt.Fprintf(x.w, "loaded %d entities; type help for commands\n", s.Len())
	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		quit, err := x.exec(line)
		if err != nil {
			log.Println(err)
			continue
		}
		if quit {
			return nil
		}
	}
}

var errMissingDelimiter = errors.New("missing delimiter")

type explorer struct {
	s *schematic.Schematic
	g grid.Grid
	w io.Writer
}

const explorerHelp = `commands:
  at ROW,COL   show the entity at a position
  adj ROW,COL  show the entities around the entity at a position
  pos ID       show the positions of an entity
  show         print the grid
  quit         exit
`

func (x *explorer) exec(line string) (quit bool, err error) {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "":
	case "help":
		fmt.Fprint(x.w, explorerHelp)
	case "quit", "exit":
		return true, nil
	case "show":
		fmt.Fprint(x.w, x.g)
	case "at":
		p, err := parsePosition(arg)
		if err != nil {
			return false, err
		}
		e, ok := x.s.At(p)
		if !ok {
			fmt.Fprintf(x.w, "%v: empty\n", p)
			return false, nil
		}
		fmt.Fprintf(x.w, "%v: %v\n", p, e)
	case "adj":
		p, err := parsePosition(arg)
		if err != nil {
			return false, err
		}
		e, ok := x.s.At(p)
		if !ok {
			fmt.Fprintf(x.w, "%v: empty\n", p)
			return false, nil
		}
		var names []string
		for _, adj := range x.s.Adjacent(e.ID) {
			names = append(names, adj.String())
		}
		fmt.Fprintf(x.w, "%v: %s\n", e, strings.Join(names, " "))
	case "pos":
		id, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return false, fmt.Errorf("bad entity id: %s", err)
		}
		var ps []string
		for p := range x.s.Positions(schematic.ID(id)) {
			ps = append(ps, p.String())
		}
		if len(ps) == 0 {
			return false, fmt.Errorf("no entity with id %d", id)
		}
		fmt.Fprintln(x.w, strings.Join(ps, " "))
	default:
		return false, fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return false, nil
}

// parsePosition parses "ROW,COL".
func parsePosition(s string) (schematic.Position, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return schematic.Position{}, fmt.Errorf("%w: want ROW,COL; got %q", errMissingDelimiter, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return schematic.Position{}, fmt.Errorf("bad row: %s", err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return schematic.Position{}, fmt.Errorf("bad column: %s", err)
	}
	return schematic.Position{Row: row, Col: col}, nil
}
