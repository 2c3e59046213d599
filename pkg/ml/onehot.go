// Package ml provides small helpers for preparing machine learning data.
package ml

import (
	"errors"
	"fmt"
)

// Common error variables for data preparation.
var (
	// ErrInvalidClassCount indicates a non-positive number of classes
	ErrInvalidClassCount = errors.New("number of classes must be positive")

	// ErrIndexOutOfClasses indicates a class index outside [0, classes)
	ErrIndexOutOfClasses = errors.New("class index out of range")
)

// IndicesToOneHot converts class indices to one-hot encoded rows. The
// result has one row per index and classes columns; row i holds a 1 in
// column indices[i] and 0 elsewhere.
func IndicesToOneHot(indices []int, classes int) ([][]int, error) {
	if classes < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidClassCount, classes)
	}
	rows := make([][]int, len(indices))
	for i, index := range indices {
		if index < 0 || index >= classes {
			return nil, fmt.Errorf("%w: index %d with %d classes", ErrIndexOutOfClasses, index, classes)
		}
		row := make([]int, classes)
		row[index] = 1
		rows[i] = row
	}
	return rows, nil
}
