package solutions

import (
	"fmt"
	"strings"

	"github.com/multimediallc/aoc-2023/internal/config"
	"github.com/multimediallc/aoc-2023/internal/registry"
)

func init() {
	registry.Register(registry.Puzzle{
		Day:   1,
		Title: "Trebuchet?!",
		Parts: [2]registry.Part{
			{Label: "Calibration sum", Solve: SolveDay1Part1},
			{Label: "Calibration sum", Solve: SolveDay1Part2},
		},
	})
}

var digitWords = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

func SolveDay1Part1(input []string, _ *config.Config) (int, error) {
	return calibrationSum(input, false)
}

func SolveDay1Part2(input []string, _ *config.Config) (int, error) {
	return calibrationSum(input, true)
}

func calibrationSum(input []string, words bool) (int, error) {
	sum := 0
	for i, line := range input {
		value, err := calibrationValue(line, words)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		sum += value
	}
	return sum, nil
}

// calibrationValue combines the first and last digit of the line.
// Spelled-out digits may share letters ("twone" is 2 then 1).
func calibrationValue(line string, words bool) (int, error) {
	first, last := -1, -1
	for i := range line {
		digit, ok := digitAt(line, i, words)
		if !ok {
			continue
		}
		if first < 0 {
			first = digit
		}
		last = digit
	}
	if first < 0 {
		return 0, fmt.Errorf("no digit in %q", line)
	}
	return first*10 + last, nil
}

func digitAt(line string, i int, words bool) (int, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !words {
		return 0, false
	}
	for d, word := range digitWords {
		if strings.HasPrefix(line[i:], word) {
			return d + 1, true
		}
	}
	return 0, false
}
