package f

import (
	"maps"
	"slices"
)

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type Set[T comparable] map[T]struct{}

func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s.Add(item)
	}
	return s
}

func (s Set[T]) Add(item T) {
	s[item] = struct{}{}
}

func (s Set[T]) Remove(item T) {
	delete(s, item)
}

func (s Set[T]) Contains(item T) bool {
	_, found := s[item]
	return found
}

func (s Set[T]) Len() int {
	return len(s)
}

func (s Set[T]) Items() []T {
	return slices.Collect(maps.Keys(s))
}

// Intersect returns the items present in both sets
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	result := NewSet[T]()
	for item := range s {
		if other.Contains(item) {
			result.Add(item)
		}
	}
	return result
}

func Map[T, U any](ts []T, f func(T) U) []U {
	us := make([]U, len(ts))
	for i, t := range ts {
		us[i] = f(t)
	}
	return us
}

// MapErr is Map for conversions that can fail; it stops at the first error
func MapErr[T, U any](ts []T, f func(T) (U, error)) ([]U, error) {
	us := make([]U, len(ts))
	for i, t := range ts {
		u, err := f(t)
		if err != nil {
			return nil, err
		}
		us[i] = u
	}
	return us, nil
}

func Filtered[T any](ts []T, f func(T) bool) []T {
	filtered := make([]T, 0)
	for _, t := range ts {
		if f(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func Sum[T Integer](ts []T) T {
	var total T
	for _, t := range ts {
		total += t
	}
	return total
}

func Product[T Integer](ts []T) T {
	var total T = 1
	for _, t := range ts {
		total *= t
	}
	return total
}

// Counts returns the number of occurrences of each item
func Counts[T comparable](ts []T) map[T]int {
	counts := make(map[T]int, len(ts))
	for _, t := range ts {
		counts[t]++
	}
	return counts
}

func Intersection[T comparable](slice1, slice2 []T) []T {
	slice1Items := Counts(slice1)
	return Filtered(slice2, func(t T) bool {
		if slice1Items[t] > 0 {
			slice1Items[t]--
			return true
		}
		return false
	})
}

func SlicesItemsMatch[T comparable](slice1, slice2 []T) bool {
	if len(slice1) != len(slice2) {
		return false
	}
	return maps.Equal(Counts(slice1), Counts(slice2))
}

func Find[T any](slice []T, findFunc func(T) bool) (T, bool) {
	for _, item := range slice {
		if findFunc(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func Abs[T Integer](n T) T {
	if n < 0 {
		return -n
	}
	return n
}

func GCD[T Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of all values, or 0 for none
func LCM[T Integer](values ...T) T {
	if len(values) == 0 {
		return 0
	}
	result := values[0]
	for _, v := range values[1:] {
		result = result / GCD(result, v) * v
	}
	return result
}
