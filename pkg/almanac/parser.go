package almanac

import (
	"fmt"
	"strconv"
	"strings"
)

// Almanac holds the seed header and the mapping chain parsed from the puzzle input
type Almanac struct {
	Seeds []int
	Chain Chain
}

// SeedRanges pairs the seed header as (start, length) and returns the closed intervals
func (a Almanac) SeedRanges() ([]Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("seed header has an odd number of values: %d", len(a.Seeds))
	}
	ranges := make([]Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		start, length := a.Seeds[i], a.Seeds[i+1]
		if length <= 0 {
			continue
		}
		ranges = append(ranges, Interval{start, start + length - 1})
	}
	return ranges, nil
}

// Parse reads the seed header followed by blank-line separated map blocks.
// On disk a rule is "dest src len"; it is stored source first.
func Parse(lines []string) (Almanac, error) {
	if len(lines) == 0 {
		return Almanac{}, fmt.Errorf("empty almanac")
	}
	seeds, err := parseSeeds(lines[0])
	if err != nil {
		return Almanac{}, fmt.Errorf("line 1: %w", err)
	}

	var chain Chain
	name := ""
	var rules []Rule
	inBlock := false

	closeBlock := func() error {
		if !inBlock {
			return nil
		}
		stage, err := NewStage(name, rules)
		if err != nil {
			return err
		}
		chain = append(chain, stage)
		name, rules, inBlock = "", nil, false
		return nil
	}

	for i, line := range lines[1:] {
		lineNo := i + 2
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			if err := closeBlock(); err != nil {
				return Almanac{}, fmt.Errorf("line %d: %w", lineNo, err)
			}
		case strings.HasSuffix(line, "map:"):
			if err := closeBlock(); err != nil {
				return Almanac{}, fmt.Errorf("line %d: %w", lineNo, err)
			}
			name = strings.TrimSpace(strings.TrimSuffix(line, "map:"))
			inBlock = true
		default:
			if !inBlock {
				return Almanac{}, fmt.Errorf("line %d: rule %q outside of a map block", lineNo, line)
			}
			rule, err := parseRule(line)
			if err != nil {
				return Almanac{}, fmt.Errorf("line %d: %w", lineNo, err)
			}
			rules = append(rules, rule)
		}
	}
	if err := closeBlock(); err != nil {
		return Almanac{}, fmt.Errorf("line %d: %w", len(lines), err)
	}

	return Almanac{Seeds: seeds, Chain: chain}, nil
}

func parseSeeds(line string) ([]int, error) {
	label, values, found := strings.Cut(line, ":")
	if !found || strings.TrimSpace(label) != "seeds" {
		return nil, fmt.Errorf("expected seed header, got %q", line)
	}
	fields := strings.Fields(values)
	seeds := make([]int, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", field, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("negative seed %d", n)
		}
		seeds[i] = n
	}
	return seeds, nil
}

func parseRule(line string) (Rule, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Rule{}, fmt.Errorf("expected 3 values in rule %q, got %d", line, len(fields))
	}
	var nums [3]int
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return Rule{}, fmt.Errorf("invalid rule value %q: %w", field, err)
		}
		nums[i] = n
	}
	return Rule{Source: nums[1], Dest: nums[0], Length: nums[2]}, nil
}
