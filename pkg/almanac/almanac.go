// Package almanac translates seed numbers and seed intervals through a chain of
// piecewise-linear mapping stages.
package almanac

import (
	"fmt"
	"sort"
	"strings"
)

// Rule translates the half-open source range [Source, Source+Length) by Dest-Source
type Rule struct {
	Source int
	Dest   int
	Length int
}

// SourceEnd returns the last value covered by the rule
func (r Rule) SourceEnd() int {
	return r.Source + r.Length - 1
}

// Offset returns the amount added to every covered value
func (r Rule) Offset() int {
	return r.Dest - r.Source
}

// Contains reports whether v falls inside the rule's source range
func (r Rule) Contains(v int) bool {
	return r.Source <= v && v < r.Source+r.Length
}

// Stage is a named layer of non-overlapping rules, sorted by Source.
// Values not covered by any rule map to themselves.
type Stage struct {
	Name  string
	rules []Rule
}

// NewStage sorts the rules by source start and rejects overlapping or empty ones
func NewStage(name string, rules []Rule) (Stage, error) {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Source < sorted[j].Source
	})
	for i, r := range sorted {
		if r.Length <= 0 {
			return Stage{}, fmt.Errorf("stage %s: rule %+v has non-positive length", name, r)
		}
		if r.Source < 0 || r.Dest < 0 {
			return Stage{}, fmt.Errorf("stage %s: rule %+v has a negative start", name, r)
		}
		if i > 0 && sorted[i-1].SourceEnd() >= r.Source {
			return Stage{}, fmt.Errorf("stage %s: rules %+v and %+v overlap", name, sorted[i-1], r)
		}
	}
	return Stage{Name: name, rules: sorted}, nil
}

// Rules returns a copy of the stage rules in source order
func (s Stage) Rules() []Rule {
	rules := make([]Rule, len(s.rules))
	copy(rules, s.rules)
	return rules
}

// Map translates a single value through the stage
func (s Stage) Map(v int) int {
	// first rule starting after v; the candidate is the one before it
	idx := sort.Search(len(s.rules), func(i int) bool {
		return s.rules[i].Source > v
	})
	if idx == 0 {
		return v
	}
	if r := s.rules[idx-1]; r.Contains(v) {
		return v + r.Offset()
	}
	return v
}

// MapInterval translates one interval through the stage, splitting it at rule boundaries.
// The returned intervals partition the image of the input.
func (s Stage) MapInterval(in Interval) []Interval {
	out := make([]Interval, 0, 1)
	pending := []Interval{in}
	for len(pending) > 0 {
		cur := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		matched := false
		for _, r := range s.rules {
			srcEnd := r.SourceEnd()
			delta := r.Offset()
			switch {
			case r.Source <= cur.Start && cur.Stop <= srcEnd:
				// fully contained
				out = append(out, cur.Shift(delta))
			case cur.Start < r.Source && r.Source <= cur.Stop:
				// rule starts inside the interval
				stop := min(cur.Stop, srcEnd)
				out = append(out, Interval{r.Source, stop}.Shift(delta))
				pending = append(pending, Interval{cur.Start, r.Source - 1})
				if cur.Stop > srcEnd {
					pending = append(pending, Interval{srcEnd + 1, cur.Stop})
				}
			case r.Source <= cur.Start && cur.Start <= srcEnd && srcEnd < cur.Stop:
				// interval starts inside the rule and runs past its end
				out = append(out, Interval{cur.Start, srcEnd}.Shift(delta))
				pending = append(pending, Interval{srcEnd + 1, cur.Stop})
			default:
				continue
			}
			matched = true
			break
		}
		if !matched {
			out = append(out, cur)
		}
	}
	return out
}

// Chain is the ordered composition of stages, seed to location
type Chain []Stage

// Resolve threads a single value through every stage
func (c Chain) Resolve(v int) int {
	for _, stage := range c {
		v = stage.Map(v)
	}
	return v
}

// ResolveIntervals threads a set of intervals through every stage
func (c Chain) ResolveIntervals(intervals []Interval) []Interval {
	current := make([]Interval, len(intervals))
	copy(current, intervals)
	for _, stage := range c {
		next := make([]Interval, 0, len(current))
		for _, in := range current {
			next = append(next, stage.MapInterval(in)...)
		}
		current = next
	}
	return current
}

func (c Chain) String() string {
	names := make([]string, len(c))
	for i, stage := range c {
		names[i] = stage.Name
	}
	return strings.Join(names, " -> ")
}
