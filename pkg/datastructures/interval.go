package datastructures

import (
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"
)

// Interval is a closed interval over an ordered element type. The zero
// value is the empty interval. Typical element types are numbers and
// anything else with a total order under <.
type Interval[T constraints.Ordered] struct {
	left  T
	right T
	empty bool
}

// NewInterval creates the closed interval [left, right]. It fails if
// left > right.
func NewInterval[T constraints.Ordered](left, right T) (Interval[T], error) {
	if left > right {
		return Interval[T]{}, fmt.Errorf("%w: left %v > right %v", ErrInvalidInterval, left, right)
	}
	return Interval[T]{left: left, right: right}, nil
}

// EmptyInterval returns the empty interval.
func EmptyInterval[T constraints.Ordered]() Interval[T] {
	return Interval[T]{empty: true}
}

// IsEmpty reports whether the interval contains no points.
func (iv Interval[T]) IsEmpty() bool {
	return iv.empty
}

// Bounds returns the left and right bound. The bounds are meaningless when
// the interval is empty.
func (iv Interval[T]) Bounds() (left, right T) {
	return iv.left, iv.right
}

// Contains reports whether the point lies inside the interval.
func (iv Interval[T]) Contains(point T) bool {
	return !iv.empty && iv.left <= point && point <= iv.right
}

// Intersection returns the overlap of two intervals, which is always a
// single (possibly empty) interval.
func (iv Interval[T]) Intersection(other Interval[T]) Interval[T] {
	if iv.empty || other.empty {
		return EmptyInterval[T]()
	}
	// Standardize so that iv starts first.
	if other.left < iv.left {
		iv, other = other, iv
	}
	if other.left > iv.right {
		return EmptyInterval[T]()
	}
	right := iv.right
	if other.right < right {
		right = other.right
	}
	return Interval[T]{left: other.left, right: right}
}

// Union combines two intervals. Overlapping or touching intervals collapse
// into one; disjoint intervals yield a union with two members.
func (iv Interval[T]) Union(other Interval[T]) IntervalUnion[T] {
	return NewIntervalUnion(iv, other)
}

// IsSubsetOf reports whether the interval lies completely inside other.
// The empty interval is a subset of everything.
func (iv Interval[T]) IsSubsetOf(other Interval[T]) bool {
	if iv.empty {
		return true
	}
	if other.empty {
		return false
	}
	return other.left <= iv.left && iv.right <= other.right
}

// String implements fmt.Stringer.
func (iv Interval[T]) String() string {
	if iv.empty {
		return "[]"
	}
	return fmt.Sprintf("[%v, %v]", iv.left, iv.right)
}

// IntervalUnion is a set of points represented as a union of disjoint
// intervals. It is kept simplified: members are sorted by left bound and
// overlapping or touching members are coalesced.
type IntervalUnion[T constraints.Ordered] struct {
	intervals []Interval[T]
}

// NewIntervalUnion builds a simplified union of the given intervals. Empty
// intervals are dropped.
func NewIntervalUnion[T constraints.Ordered](intervals ...Interval[T]) IntervalUnion[T] {
	members := make([]Interval[T], 0, len(intervals))
	for _, iv := range intervals {
		if !iv.empty {
			members = append(members, iv)
		}
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].left < members[j].left
	})
	simplified := members[:0]
	for _, iv := range members {
		if len(simplified) == 0 {
			simplified = append(simplified, iv)
			continue
		}
		last := &simplified[len(simplified)-1]
		// Touching intervals merge as well: [a,b] ∪ [b,c] = [a,c].
		if iv.left <= last.right {
			if iv.right > last.right {
				last.right = iv.right
			}
			continue
		}
		simplified = append(simplified, iv)
	}
	return IntervalUnion[T]{intervals: simplified}
}

// IsEmpty reports whether the union contains no points.
func (u IntervalUnion[T]) IsEmpty() bool {
	return len(u.intervals) == 0
}

// Intervals returns the simplified members of the union.
func (u IntervalUnion[T]) Intervals() []Interval[T] {
	members := make([]Interval[T], len(u.intervals))
	copy(members, u.intervals)
	return members
}

// Contains reports whether the point lies inside any member.
func (u IntervalUnion[T]) Contains(point T) bool {
	for _, iv := range u.intervals {
		if iv.Contains(point) {
			return true
		}
	}
	return false
}

// Union returns the combination of two unions.
func (u IntervalUnion[T]) Union(other IntervalUnion[T]) IntervalUnion[T] {
	return NewIntervalUnion(append(u.Intervals(), other.intervals...)...)
}

// Intersection returns the points contained in both unions. Intersection
// distributes over union members, so the result is the simplified union of
// all pairwise interval intersections.
func (u IntervalUnion[T]) Intersection(other IntervalUnion[T]) IntervalUnion[T] {
	var pieces []Interval[T]
	for _, a := range u.intervals {
		for _, b := range other.intervals {
			piece := a.Intersection(b)
			if !piece.empty {
				pieces = append(pieces, piece)
			}
		}
	}
	return NewIntervalUnion(pieces...)
}

// IsSubsetOf reports whether every member lies inside other. Because both
// unions are simplified, a member is covered iff a single member of other
// covers it.
func (u IntervalUnion[T]) IsSubsetOf(other IntervalUnion[T]) bool {
	for _, iv := range u.intervals {
		covered := false
		for _, cover := range other.intervals {
			if iv.IsSubsetOf(cover) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

// Equal reports whether two unions contain exactly the same points.
func (u IntervalUnion[T]) Equal(other IntervalUnion[T]) bool {
	return u.IsSubsetOf(other) && other.IsSubsetOf(u)
}

// String implements fmt.Stringer.
func (u IntervalUnion[T]) String() string {
	return fmt.Sprintf("%v", u.intervals)
}
