// Package schematic extracts numbers and symbols from an engine schematic
// grid and indexes them by position.
package schematic

import (
	"errors"
	"fmt"
	"iter"
	"strconv"

	"github.com/cespare/advent2023/grid"
)

type ID uint32

type Kind uint8

const (
	Number Kind = iota + 1
	Symbol
)

// An Entity is a number or a symbol found in the grid.
// Num is set for numbers and Sym for symbols.
type Entity struct {
	ID   ID
	Kind Kind
	Num  uint64
	Sym  rune
}

func (e Entity) IsNumber() bool { return e.Kind == Number }
func (e Entity) IsSymbol() bool { return e.Kind == Symbol }

func (e Entity) String() string {
	switch e.Kind {
	case Number:
		return fmt.Sprintf("#%d:%d", e.ID, e.Num)
	case Symbol:
		return fmt.Sprintf("#%d:%c", e.ID, e.Sym)
	}
	return fmt.Sprintf("#%d:?", e.ID)
}

// NumericOverflowError reports a run of digits too large for a uint64.
type NumericOverflowError struct {
	Row, Col int // start of the run
	Digits   string
}

func (e *NumericOverflowError) Error() string {
	return fmt.Sprintf("numeric overflow: %s at row %d, column %d does not fit in 64 bits",
		e.Digits, e.Row, e.Col)
}

func (e *NumericOverflowError) Unwrap() error { return strconv.ErrRange }

// span is the run of positions owned by an entity: n columns of a row
// starting at start.
type span struct {
	start Position
	n     int
}

// A Schematic is an immutable index of the entities in a grid.
// It is safe for concurrent use.
type Schematic struct {
	entities []Entity // entities[i].ID == i+1
	spans    []span   // parallel to entities
	byPos    map[Position]ID
}

// New scans g in row-major order and builds a Schematic.
// IDs are assigned from 1 in the order entities are completed:
// a number is completed by the first non-digit after it (or the end of
// its row), before any symbol in that cell.
func New(g grid.Grid) (*Schematic, error) {
	b := builder{s: &Schematic{byPos: make(map[Position]ID)}}
	for r, row := range g {
		b.reset()
		for c, cell := range row {
			if cell.Kind == grid.Digit {
				if len(b.digits) == 0 {
					b.start = Position{r, c}
				}
				b.digits = append(b.digits, byte(cell.Char))
				continue
			}
			if err := b.closeNumber(); err != nil {
				return nil, err
			}
			if cell.Kind == grid.Symbol {
				b.add(Entity{Kind: Symbol, Sym: cell.Char}, span{Position{r, c}, 1})
			}
		}
		if err := b.closeNumber(); err != nil {
			return nil, err
		}
	}
	return b.s, nil
}

type builder struct {
	s      *Schematic
	digits []byte
	start  Position
}

func (b *builder) reset() {
	b.digits = b.digits[:0]
}

func (b *builder) closeNumber() error {
	if len(b.digits) == 0 {
		return nil
	}
	n, err := strconv.ParseUint(string(b.digits), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return &NumericOverflowError{Row: b.start.Row, Col: b.start.Col, Digits: string(b.digits)}
		}
		return err
	}
	b.add(Entity{Kind: Number, Num: n}, span{b.start, len(b.digits)})
	b.reset()
	return nil
}

func (b *builder) add(e Entity, sp span) {
	e.ID = ID(len(b.s.entities) + 1)
	b.s.entities = append(b.s.entities, e)
	b.s.spans = append(b.s.spans, sp)
	for i := 0; i < sp.n; i++ {
		b.s.byPos[sp.start.add(0, i)] = e.ID
	}
}

// Len returns the number of entities.
func (s *Schematic) Len() int { return len(s.entities) }

// Entities yields every entity in scan order.
func (s *Schematic) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, e := range s.entities {
			if !yield(e) {
				return
			}
		}
	}
}

func (s *Schematic) Entity(id ID) (Entity, bool) {
	if id == 0 || int(id) > len(s.entities) {
		return Entity{}, false
	}
	return s.entities[id-1], true
}

// At returns the entity occupying p, if any.
func (s *Schematic) At(p Position) (Entity, bool) {
	id, ok := s.byPos[p]
	if !ok {
		return Entity{}, false
	}
	return s.entities[id-1], true
}

// Positions yields the positions owned by the entity id, left to right.
// It yields nothing for an unknown id.
func (s *Schematic) Positions(id ID) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		if id == 0 || int(id) > len(s.spans) {
			return
		}
		sp := s.spans[id-1]
		for i := 0; i < sp.n; i++ {
			if !yield(sp.start.add(0, i)) {
				return
			}
		}
	}
}

// Adjacent returns the entities occupying the positions that surround the
// entity id. Each neighboring position is considered once, but an entity
// spanning several neighboring positions is returned once per position.
// Callers that need distinct entities should collapse the result by ID.
func (s *Schematic) Adjacent(id ID) []Entity {
	own := make(map[Position]struct{})
	for p := range s.Positions(id) {
		own[p] = struct{}{}
	}
	seen := make(map[Position]struct{})
	var adj []Entity
	for p := range s.Positions(id) {
		for _, q := range p.Adjacent() {
			if _, ok := own[q]; ok {
				continue
			}
			if _, ok := seen[q]; ok {
				continue
			}
			seen[q] = struct{}{}
			if e, ok := s.At(q); ok {
				adj = append(adj, e)
			}
		}
	}
	return adj
}
