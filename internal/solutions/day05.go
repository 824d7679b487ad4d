package solutions

import (
	"fmt"

	"github.com/multimediallc/aoc-2023/internal/config"
	"github.com/multimediallc/aoc-2023/internal/registry"
	"github.com/multimediallc/aoc-2023/pkg/almanac"
)

func init() {
	registry.Register(registry.Puzzle{
		Day:   5,
		Title: "If You Give A Seed A Fertilizer",
		Parts: [2]registry.Part{
			{Label: "Lowest location number", Solve: SolveDay5Part1},
			{Label: "Lowest location number", Solve: SolveDay5Part2},
		},
	})
}

func SolveDay5Part1(input []string, _ *config.Config) (int, error) {
	a, err := almanac.Parse(input)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 {
		return 0, fmt.Errorf("no seeds in almanac")
	}
	lowest := a.Chain.Resolve(a.Seeds[0])
	for _, seed := range a.Seeds[1:] {
		lowest = min(lowest, a.Chain.Resolve(seed))
	}
	return lowest, nil
}

func SolveDay5Part2(input []string, _ *config.Config) (int, error) {
	a, err := almanac.Parse(input)
	if err != nil {
		return 0, err
	}
	seedRanges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	lowest, ok := almanac.MinStart(a.Chain.ResolveIntervals(seedRanges))
	if !ok {
		return 0, fmt.Errorf("no seed ranges in almanac")
	}
	return lowest, nil
}
