package solutions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/multimediallc/aoc-2023/internal/config"
	"github.com/multimediallc/aoc-2023/internal/registry"
	f "github.com/multimediallc/aoc-2023/pkg/functional"
)

func init() {
	registry.Register(registry.Puzzle{
		Day:   4,
		Title: "Scratchcards",
		Parts: [2]registry.Part{
			{Label: "Card point sum", Solve: SolveDay4Part1},
			{Label: "Number of scratchcards", Solve: SolveDay4Part2},
		},
	})
}

// parseScratchcards returns the number of winning numbers owned on each card, in card order
func parseScratchcards(input []string) ([]int, error) {
	wins := make([]int, len(input))
	for i, line := range input {
		_, numbers, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("line %d: missing ':' in %q", i+1, line)
		}
		winningPart, ownedPart, found := strings.Cut(numbers, "|")
		if !found {
			return nil, fmt.Errorf("line %d: missing '|' in %q", i+1, line)
		}
		winning, err := f.MapErr(strings.Fields(winningPart), strconv.Atoi)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		owned, err := f.MapErr(strings.Fields(ownedPart), strconv.Atoi)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		wins[i] = f.NewSet(owned...).Intersect(f.NewSet(winning...)).Len()
	}
	return wins, nil
}

func SolveDay4Part1(input []string, _ *config.Config) (int, error) {
	wins, err := parseScratchcards(input)
	if err != nil {
		return 0, err
	}
	points := 0
	for _, w := range wins {
		if w > 0 {
			points += 1 << (w - 1)
		}
	}
	return points, nil
}

func SolveDay4Part2(input []string, _ *config.Config) (int, error) {
	wins, err := parseScratchcards(input)
	if err != nil {
		return 0, err
	}
	memo := make(map[int]int, len(wins))
	total := 0
	for card := range wins {
		total += cardsWon(card, wins, memo)
	}
	return total, nil
}

// cardsWon counts the card itself plus every copy it wins, transitively.
// memo is keyed by zero-based card index.
func cardsWon(card int, wins []int, memo map[int]int) int {
	if n, found := memo[card]; found {
		return n
	}
	n := 1
	for next := card + 1; next <= card+wins[card] && next < len(wins); next++ {
		n += cardsWon(next, wins, memo)
	}
	memo[card] = n
	return n
}
