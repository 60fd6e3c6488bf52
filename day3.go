package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/cespare/advent2023/grid"
	"github.com/cespare/advent2023/schematic"
	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
)

func init() {
	register("3a", "sum of part numbers", func(args []string) error {
		return day3("3a", args, partNumberSum)
	})
	register("3b", "sum of gear ratios", func(args []string) error {
		return day3("3b", args, gearRatioSum)
	})
}

func day3(name string, args []string, solve func(*schematic.Schematic) uint64) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Print schematic statistics to stderr")
	dump := fs.Bool("dump", false, "Print every entity to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}
	s, _, err := loadSchematic(input)
	if err != nil {
		return err
	}
	if *verbose {
		printStats(os.Stderr, s, len(input))
	}
	if *dump {
		for e := range s.Entities() {
			pretty.Fprintf(os.Stderr, "%# v\n", e)
		}
	}
	fmt.Println(solve(s))
	return nil
}

func loadSchematic(input []byte) (*schematic.Schematic, grid.Grid, error) {
	g, err := grid.Read(bytes.NewReader(input))
	if err != nil {
		return nil, nil, err
	}
	s, err := schematic.New(g)
	if err != nil {
		return nil, nil, err
	}
	return s, g, nil
}

func printStats(w io.Writer, s *schematic.Schematic, size int) {
	var numbers, symbols int64
	for e := range s.Entities() {
		if e.IsNumber() {
			numbers++
		} else {
			symbols++
		}
	}
	fmt.Fprintf(w, "read %s; %s numbers, %s symbols\n",
		humanize.Bytes(uint64(size)), humanize.Comma(numbers), humanize.Comma(symbols))
}

// partNumberSum sums the numbers that touch any symbol.
func partNumberSum(s *schematic.Schematic) uint64 {
	var sum uint64
	for e := range s.Entities() {
		if !e.IsNumber() {
			continue
		}
		// A number touching the same symbol twice still counts once.
		if slices.ContainsFunc(s.Adjacent(e.ID), schematic.Entity.IsSymbol) {
			sum += e.Num
		}
	}
	return sum
}

// gearRatioSum sums, over every * touching exactly two distinct numbers,
// the product of those numbers.
func gearRatioSum(s *schematic.Schematic) uint64 {
	var sum uint64
	for e := range s.Entities() {
		if !e.IsSymbol() || e.Sym != '*' {
			continue
		}
		// Collapse by ID: a multi-digit number may border the gear at
		// more than one position.
		parts := make(map[schematic.ID]uint64)
		for _, adj := range s.Adjacent(e.ID) {
			if adj.IsNumber() {
				parts[adj.ID] = adj.Num
			}
		}
		if len(parts) != 2 {
			continue
		}
		ratio := uint64(1)
		for _, n := range parts {
			ratio *= n
		}
		sum += ratio
	}
	return sum
}
