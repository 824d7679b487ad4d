package registry

import (
	"fmt"
	"maps"
	"slices"

	"github.com/multimediallc/aoc-2023/internal/config"
)

// Solver computes one answer from the raw input lines
type Solver func(input []string, conf *config.Config) (int, error)

type Part struct {
	Label string
	Solve Solver
}

type Puzzle struct {
	Day   int
	Title string
	Parts [2]Part
}

// Part returns part 1 or 2 of the puzzle
func (p Puzzle) Part(n int) (Part, error) {
	if n != 1 && n != 2 {
		return Part{}, fmt.Errorf("invalid part: %d", n)
	}
	return p.Parts[n-1], nil
}

var table = map[int]Puzzle{}

// Register adds a puzzle; registering the same day twice is a programming error
func Register(p Puzzle) {
	if _, found := table[p.Day]; found {
		panic(fmt.Sprintf("day %d registered twice", p.Day))
	}
	table[p.Day] = p
}

func Lookup(day int) (Puzzle, bool) {
	p, found := table[day]
	return p, found
}

// Days returns the registered days in ascending order
func Days() []int {
	return slices.Sorted(maps.Keys(table))
}
