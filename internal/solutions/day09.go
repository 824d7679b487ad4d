package solutions

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/multimediallc/aoc-2023/internal/config"
	"github.com/multimediallc/aoc-2023/internal/registry"
	f "github.com/multimediallc/aoc-2023/pkg/functional"
)

func init() {
	registry.Register(registry.Puzzle{
		Day:   9,
		Title: "Mirage Maintenance",
		Parts: [2]registry.Part{
			{Label: "Sum of extrapolated values", Solve: SolveDay9Part1},
			{Label: "Sum of extrapolated values", Solve: SolveDay9Part2},
		},
	})
}

func parseSequences(input []string) ([][]int, error) {
	sequences := make([][]int, len(input))
	for i, line := range input {
		seq, err := f.MapErr(strings.Fields(line), strconv.Atoi)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(seq) == 0 {
			return nil, fmt.Errorf("line %d: empty sequence", i+1)
		}
		sequences[i] = seq
	}
	return sequences, nil
}

// extrapolate returns the value following seq, found by repeated differencing
func extrapolate(seq []int) int {
	if !slices.ContainsFunc(seq, func(n int) bool { return n != 0 }) {
		return 0
	}
	diffs := make([]int, len(seq)-1)
	for i := range diffs {
		diffs[i] = seq[i+1] - seq[i]
	}
	return seq[len(seq)-1] + extrapolate(diffs)
}

func SolveDay9Part1(input []string, _ *config.Config) (int, error) {
	sequences, err := parseSequences(input)
	if err != nil {
		return 0, err
	}
	return f.Sum(f.Map(sequences, extrapolate)), nil
}

func SolveDay9Part2(input []string, _ *config.Config) (int, error) {
	sequences, err := parseSequences(input)
	if err != nil {
		return 0, err
	}
	// extrapolating backwards is extrapolating the reversed sequence forwards
	return f.Sum(f.Map(sequences, func(seq []int) int {
		reversed := slices.Clone(seq)
		slices.Reverse(reversed)
		return extrapolate(reversed)
	})), nil
}
