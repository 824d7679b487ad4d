package solutions

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/multimediallc/aoc-2023/internal/config"
	"github.com/multimediallc/aoc-2023/internal/registry"
	f "github.com/multimediallc/aoc-2023/pkg/functional"
)

func init() {
	registry.Register(registry.Puzzle{
		Day:   8,
		Title: "Haunted Wasteland",
		Parts: [2]registry.Part{
			{Label: "Number of steps required", Solve: SolveDay8Part1},
			{Label: "Number of steps required", Solve: SolveDay8Part2},
		},
	})
}

type wastelandMap struct {
	instructions string
	nodes        map[string][2]string
}

func parseWastelandMap(input []string) (wastelandMap, error) {
	if len(input) < 3 {
		return wastelandMap{}, fmt.Errorf("expected instructions and nodes, got %d lines", len(input))
	}
	m := wastelandMap{instructions: strings.TrimSpace(input[0]), nodes: map[string][2]string{}}
	if m.instructions == "" || strings.Trim(m.instructions, "LR") != "" {
		return wastelandMap{}, fmt.Errorf("line 1: invalid instructions %q", input[0])
	}
	for i, line := range input[2:] {
		// AAA = (BBB, CCC)
		name, targets, found := strings.Cut(line, "=")
		left, right, foundComma := strings.Cut(strings.Trim(strings.TrimSpace(targets), "()"), ",")
		if !found || !foundComma {
			return wastelandMap{}, fmt.Errorf("line %d: invalid node %q", i+3, line)
		}
		m.nodes[strings.TrimSpace(name)] = [2]string{strings.TrimSpace(left), strings.TrimSpace(right)}
	}
	return m, nil
}

// steps follows the instructions from start, cycling through them, until done accepts a node
func (m wastelandMap) steps(start string, done func(string) bool) (int, error) {
	node := start
	count := 0
	for !done(node) {
		next, found := m.nodes[node]
		if !found {
			return 0, fmt.Errorf("unknown node %q", node)
		}
		if m.instructions[count%len(m.instructions)] == 'L' {
			node = next[0]
		} else {
			node = next[1]
		}
		count++
		if count > len(m.nodes)*len(m.instructions) {
			return 0, fmt.Errorf("no end node reachable from %q", start)
		}
	}
	return count, nil
}

func SolveDay8Part1(input []string, _ *config.Config) (int, error) {
	m, err := parseWastelandMap(input)
	if err != nil {
		return 0, err
	}
	if _, found := m.nodes["AAA"]; !found {
		return 0, fmt.Errorf("start node AAA not found")
	}
	return m.steps("AAA", func(node string) bool { return node == "ZZZ" })
}

// SolveDay8Part2 assumes every ghost path loops back to its end node with a period equal to
// the number of steps needed to first reach it.
func SolveDay8Part2(input []string, _ *config.Config) (int, error) {
	m, err := parseWastelandMap(input)
	if err != nil {
		return 0, err
	}
	starts := f.Filtered(slices.Sorted(maps.Keys(m.nodes)), func(node string) bool {
		return strings.HasSuffix(node, "A")
	})
	if len(starts) == 0 {
		return 0, fmt.Errorf("no start nodes ending in A")
	}
	counts, err := f.MapErr(starts, func(start string) (int, error) {
		return m.steps(start, func(node string) bool { return strings.HasSuffix(node, "Z") })
	})
	if err != nil {
		return 0, err
	}
	return f.LCM(counts...), nil
}
