package solutions

import (
	"cmp"
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
		Day:   7,
		Title: "Camel Cards",
		Parts: [2]registry.Part{
			{Label: "Total winnings", Solve: SolveDay7Part1},
			{Label: "Total winnings", Solve: SolveDay7Part2},
		},
	})
}

const (
	cardOrder      = "23456789TJQKA"
	jokerCardOrder = "J23456789TQKA"
)

type handType int

const (
	highCard handType = iota
	onePair
	twoPair
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

type camelHand struct {
	cards string
	bid   int
	kind  handType
	// card strengths in hand order, for tie breaks
	ranks []int
}

func SolveDay7Part1(input []string, _ *config.Config) (int, error) {
	return totalWinnings(input, false)
}

func SolveDay7Part2(input []string, _ *config.Config) (int, error) {
	return totalWinnings(input, true)
}

func totalWinnings(input []string, jokers bool) (int, error) {
	hands, err := parseCamelHands(input, jokers)
	if err != nil {
		return 0, err
	}
	slices.SortFunc(hands, compareHands)
	winnings := 0
	for i, hand := range hands {
		winnings += (i + 1) * hand.bid
	}
	return winnings, nil
}

func compareHands(a, b camelHand) int {
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	return slices.Compare(a.ranks, b.ranks)
}

func parseCamelHands(input []string, jokers bool) ([]camelHand, error) {
	order := cardOrder
	if jokers {
		order = jokerCardOrder
	}
	hands := make([]camelHand, 0, len(input))
	for i, line := range input {
		fields := strings.Fields(line)
		if len(fields) != 2 || len(fields[0]) != 5 {
			return nil, fmt.Errorf("line %d: invalid hand %q", i+1, line)
		}
		bid, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid bid: %w", i+1, err)
		}
		hand := camelHand{cards: fields[0], bid: bid, ranks: make([]int, 5)}
		for j := 0; j < 5; j++ {
			rank := strings.IndexByte(order, hand.cards[j])
			if rank < 0 {
				return nil, fmt.Errorf("line %d: unknown card %q", i+1, hand.cards[j])
			}
			hand.ranks[j] = rank
		}
		hand.kind = classifyHand(hand.cards, jokers)
		hands = append(hands, hand)
	}
	return hands, nil
}

// classifyHand ranks the hand by its card counts; jokers join the largest group
func classifyHand(cards string, jokers bool) handType {
	counts := f.Counts([]rune(cards))
	numJokers := 0
	if jokers {
		numJokers = counts['J']
		delete(counts, 'J')
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return b - a })
	if len(groups) == 0 {
		// all jokers
		return fiveOfAKind
	}
	groups[0] += numJokers

	switch {
	case groups[0] == 5:
		return fiveOfAKind
	case groups[0] == 4:
		return fourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return fullHouse
	case groups[0] == 3:
		return threeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return twoPair
	case groups[0] == 2:
		return onePair
	default:
		return highCard
	}
}
