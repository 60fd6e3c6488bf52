package main

import (
	"cmp"
	"fmt"
	"log"
	"os"
	"slices"
	"strconv"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	sol, ok := solutions[os.Args[1]]
	if !ok {
		log.Fatalf("unknown solution %q", os.Args[1])
	}
	if err := sol.run(os.Args[2:]); err != nil {
		log.Fatalf("%s: %s", os.Args[1], err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [solution] [args...]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range solutionNames() {
		fmt.Fprintf(os.Stderr, "  %-4s %s\n", name, solutions[name].desc)
	}
}

type solution struct {
	desc string
	run  func(args []string) error
}

var solutions = make(map[string]solution)

func register(name, desc string, run func([]string) error) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	splitName(name) // validate
	solutions[name] = solution{desc: desc, run: run}
}

func solutionNames() []string {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	slices.SortFunc(names, compareNames)
	return names
}

// compareNames orders names by day number, then by suffix.
func compareNames(name0, name1 string) int {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if c := cmp.Compare(n0, n1); c != 0 {
		return c
	}
	return cmp.Compare(s0, s1)
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(fmt.Sprintf("solution name %q does not start with a day number", name))
	}
	return n, name[i:]
}
