package datastructures

import "fmt"

// EList is an ordered, mutable sequence of elements that supports fancy
// indexing: in addition to single-element access, several elements can be
// retrieved in one call by supplying a list of positions.
//
// Single and fancy access both accept negative positions, which address
// elements from the end of the sequence (-1 is the last element). Fancy
// access resolves every position against the receiver, in the order given,
// and repeats are allowed.
//
// An EList owns its backing storage: the constructor copies its input, and
// accessors hand out copies, so mutating a result never changes the
// receiver. EList provides no internal locking.
type EList[T any] struct {
	elements []T
}

// NewEList creates an EList holding a copy of the given elements.
func NewEList[T any](elements []T) *EList[T] {
	copied := make([]T, len(elements))
	copy(copied, elements)
	return &EList[T]{elements: copied}
}

// Len returns the number of elements.
func (l *EList[T]) Len() int {
	return len(l.elements)
}

// Append adds the given values to the end of the list.
func (l *EList[T]) Append(values ...T) {
	l.elements = append(l.elements, values...)
}

// Get retrieves the element at the given position. Negative positions count
// from the end. It returns an *IndexError if the position is outside
// [-Len(), Len()-1].
func (l *EList[T]) Get(index int) (T, error) {
	pos, err := l.resolve(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.elements[pos], nil
}

// Set replaces the element at the given position. Negative positions count
// from the end.
func (l *EList[T]) Set(index int, value T) error {
	pos, err := l.resolve(index)
	if err != nil {
		return err
	}
	l.elements[pos] = value
	return nil
}

// GetMany retrieves the elements at the given positions and returns them as
// a new, independent EList. The result has exactly len(indices) elements in
// the order the positions were given; a position may repeat. Every position
// is resolved against the receiver, never against intermediate results.
//
// If any position is out of range, GetMany returns an *IndexError
// identifying it and no partial result. An empty position list yields an
// empty EList.
func (l *EList[T]) GetMany(indices []int) (*EList[T], error) {
	resolved := make([]int, len(indices))
	for i, index := range indices {
		pos, err := l.resolve(index)
		if err != nil {
			return nil, err
		}
		resolved[i] = pos
	}
	selected := make([]T, len(resolved))
	for i, pos := range resolved {
		selected[i] = l.elements[pos]
	}
	return &EList[T]{elements: selected}, nil
}

// RemoveIndices returns a new EList without the elements at the given
// positions. Positions are matched literally against 0-based element
// positions; values that match no position are ignored.
func (l *EList[T]) RemoveIndices(indices []int) *EList[T] {
	drop := make(map[int]struct{}, len(indices))
	for _, index := range indices {
		drop[index] = struct{}{}
	}
	kept := make([]T, 0, len(l.elements))
	for i, element := range l.elements {
		if _, skip := drop[i]; !skip {
			kept = append(kept, element)
		}
	}
	return &EList[T]{elements: kept}
}

// Values returns a copy of the elements as a plain slice.
func (l *EList[T]) Values() []T {
	copied := make([]T, len(l.elements))
	copy(copied, l.elements)
	return copied
}

// EqualFunc reports whether the list and other hold equal elements in the
// same order, using eq to compare elements.
func (l *EList[T]) EqualFunc(other []T, eq func(a, b T) bool) bool {
	if len(l.elements) != len(other) {
		return false
	}
	for i, element := range l.elements {
		if !eq(element, other[i]) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (l *EList[T]) String() string {
	return fmt.Sprintf("%v", l.elements)
}

// Equal reports whether the list and other hold equal elements in the same
// order. It is a package function because Go does not allow narrowing the
// element type of a method to comparable.
func Equal[T comparable](l *EList[T], other []T) bool {
	return l.EqualFunc(other, func(a, b T) bool { return a == b })
}

// resolve maps a possibly negative index to a position in the backing
// slice, or returns an *IndexError.
func (l *EList[T]) resolve(index int) (int, error) {
	n := len(l.elements)
	if index < -n || index >= n {
		return 0, &IndexError{Index: index, Length: n}
	}
	if index < 0 {
		return index + n, nil
	}
	return index, nil
}
