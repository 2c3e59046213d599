package ml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malywonsz/mpu/pkg/ml"
)

func TestIndicesToOneHot(t *testing.T) {
	got, err := ml.IndicesToOneHot([]int{0, 1, 1}, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 1, 0}}, got)
}

func TestIndicesToOneHotEmpty(t *testing.T) {
	got, err := ml.IndicesToOneHot(nil, 2)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestIndicesToOneHotErrors(t *testing.T) {
	_, err := ml.IndicesToOneHot([]int{0, 1, 1}, 0)
	assert.ErrorIs(t, err, ml.ErrInvalidClassCount)

	_, err = ml.IndicesToOneHot([]int{0, 3}, 3)
	assert.ErrorIs(t, err, ml.ErrIndexOutOfClasses)

	_, err = ml.IndicesToOneHot([]int{-1}, 3)
	assert.ErrorIs(t, err, ml.ErrIndexOutOfClasses)
}
