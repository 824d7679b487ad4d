package solutions

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/multimediallc/aoc-2023/internal/config"
	"github.com/multimediallc/aoc-2023/internal/registry"
	f "github.com/multimediallc/aoc-2023/pkg/functional"
)

func init() {
	registry.Register(registry.Puzzle{
		Day:   6,
		Title: "Wait For It",
		Parts: [2]registry.Part{
			{Label: "Product of number of ways to break record", Solve: SolveDay6Part1},
			{Label: "Number of ways to break single race record", Solve: SolveDay6Part2},
		},
	})
}

// raceFields returns the values after the "Time:" and "Distance:" labels
func raceFields(input []string) ([]string, []string, error) {
	if len(input) != 2 {
		return nil, nil, fmt.Errorf("expected 2 lines, got %d", len(input))
	}
	_, times, foundTimes := strings.Cut(input[0], ":")
	_, distances, foundDistances := strings.Cut(input[1], ":")
	if !foundTimes || !foundDistances {
		return nil, nil, fmt.Errorf("missing Time or Distance label")
	}
	return strings.Fields(times), strings.Fields(distances), nil
}

func SolveDay6Part1(input []string, _ *config.Config) (int, error) {
	timeFields, distanceFields, err := raceFields(input)
	if err != nil {
		return 0, err
	}
	times, err := f.MapErr(timeFields, strconv.Atoi)
	if err != nil {
		return 0, err
	}
	distances, err := f.MapErr(distanceFields, strconv.Atoi)
	if err != nil {
		return 0, err
	}
	if len(times) != len(distances) {
		return 0, fmt.Errorf("%d times but %d distances", len(times), len(distances))
	}
	ways := make([]int, len(times))
	for i := range times {
		ways[i] = waysToWin(times[i], distances[i])
	}
	return f.Product(ways), nil
}

func SolveDay6Part2(input []string, _ *config.Config) (int, error) {
	timeFields, distanceFields, err := raceFields(input)
	if err != nil {
		return 0, err
	}
	// the spaces between numbers are bad kerning
	t, err := strconv.Atoi(strings.Join(timeFields, ""))
	if err != nil {
		return 0, err
	}
	d, err := strconv.Atoi(strings.Join(distanceFields, ""))
	if err != nil {
		return 0, err
	}
	return waysToWin(t, d), nil
}

// waysToWin counts hold times h in [0, t] with h*(t-h) > d.
// The quadratic root gives an estimate that is then corrected with exact integer checks.
func waysToWin(t, d int) int {
	disc := t*t - 4*d
	if disc < 0 {
		return 0
	}
	beats := func(h int) bool {
		return h*(t-h) > d
	}
	lower := max(int((float64(t)-math.Sqrt(float64(disc)))/2), 0)
	for lower > 0 && beats(lower-1) {
		lower--
	}
	for lower <= t/2 && !beats(lower) {
		lower++
	}
	// the winning hold times are symmetric around t/2
	upper := t - lower
	if upper < lower {
		return 0
	}
	return upper - lower + 1
}
