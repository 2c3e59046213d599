package datastructures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malywonsz/mpu/pkg/datastructures"
)

func TestEListGet(t *testing.T) {
	l := datastructures.NewEList([]string{"a", "b", "c"})

	tests := []struct {
		name  string
		index int
		want  string
	}{
		{name: "first", index: 0, want: "a"},
		{name: "last", index: 2, want: "c"},
		{name: "negative last", index: -1, want: "c"},
		{name: "negative first", index: -3, want: "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := l.Get(tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEListGetOutOfRange(t *testing.T) {
	l := datastructures.NewEList([]int{10, 20, 30})

	for _, index := range []int{3, -4, 100} {
		_, err := l.Get(index)
		require.Error(t, err)
		assert.ErrorIs(t, err, datastructures.ErrIndexOutOfRange)

		var indexErr *datastructures.IndexError
		require.ErrorAs(t, err, &indexErr)
		assert.Equal(t, index, indexErr.Index)
		assert.Equal(t, 3, indexErr.Length)
	}
}

func TestEListGetMany(t *testing.T) {
	l := datastructures.NewEList([]int{2, 1, 0})

	t.Run("selection order and repeats", func(t *testing.T) {
		sub, err := l.GetMany([]int{2, 0, 0})
		require.NoError(t, err)
		assert.Equal(t, []int{0, 2, 2}, sub.Values())
	})

	t.Run("negative positions", func(t *testing.T) {
		sub, err := l.GetMany([]int{-1, -3})
		require.NoError(t, err)
		assert.Equal(t, []int{0, 2}, sub.Values())
	})

	t.Run("empty index list", func(t *testing.T) {
		sub, err := l.GetMany(nil)
		require.NoError(t, err)
		assert.Zero(t, sub.Len())
	})

	t.Run("identity permutation", func(t *testing.T) {
		sub, err := l.GetMany([]int{0, 1, 2})
		require.NoError(t, err)
		assert.True(t, datastructures.Equal(sub, l.Values()))
	})

	t.Run("out of range fails atomically", func(t *testing.T) {
		sub, err := l.GetMany([]int{0, 5, 1})
		require.Error(t, err)
		assert.Nil(t, sub)
		assert.ErrorIs(t, err, datastructures.ErrIndexOutOfRange)

		var indexErr *datastructures.IndexError
		require.ErrorAs(t, err, &indexErr)
		assert.Equal(t, 5, indexErr.Index)
	})
}

// The README example: a list indexed by its own stored values.
func TestEListSelfReferentialIndexing(t *testing.T) {
	l := datastructures.NewEList([]int{2, 1, 0})

	v, err := l.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	sub, err := l.GetMany([]int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, sub.Values())

	sub, err = l.GetMany(l.Values())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, sub.Values())
}

func TestEListResultIndependence(t *testing.T) {
	l := datastructures.NewEList([]int{1, 2, 3})

	sub, err := l.GetMany([]int{0, 1})
	require.NoError(t, err)
	require.NoError(t, sub.Set(0, 99))
	sub.Append(100)

	assert.Equal(t, []int{1, 2, 3}, l.Values(), "mutating a fancy-indexing result must not change the original")

	values := l.Values()
	values[0] = 42
	assert.Equal(t, []int{1, 2, 3}, l.Values(), "Values must return a copy")
}

func TestEListSetAndAppend(t *testing.T) {
	l := datastructures.NewEList([]int{1, 2, 3})

	require.NoError(t, l.Set(-1, 30))
	assert.Equal(t, []int{1, 2, 30}, l.Values())

	err := l.Set(3, 4)
	assert.ErrorIs(t, err, datastructures.ErrIndexOutOfRange)

	l.Append(4, 5)
	assert.Equal(t, 5, l.Len())
	assert.Equal(t, []int{1, 2, 30, 4, 5}, l.Values())
}

func TestEListRemoveIndices(t *testing.T) {
	l := datastructures.NewEList([]string{"a", "b", "c", "d"})

	filtered := l.RemoveIndices([]int{1, 3})
	assert.Equal(t, []string{"a", "c"}, filtered.Values())
	assert.Equal(t, []string{"a", "b", "c", "d"}, l.Values(), "receiver stays untouched")

	assert.Equal(t, l.Values(), l.RemoveIndices(nil).Values())
	assert.Equal(t, []string{"a", "b", "c", "d"}, l.RemoveIndices([]int{17}).Values())
}

func TestEListEqual(t *testing.T) {
	l := datastructures.NewEList([]int{1, 2, 3})

	assert.True(t, datastructures.Equal(l, []int{1, 2, 3}))
	assert.False(t, datastructures.Equal(l, []int{1, 2}))
	assert.False(t, datastructures.Equal(l, []int{3, 2, 1}))

	assert.True(t, l.EqualFunc([]int{1, 2, 3}, func(a, b int) bool { return a == b }))
}

func TestEListEmpty(t *testing.T) {
	l := datastructures.NewEList([]int{})

	assert.Zero(t, l.Len())
	_, err := l.Get(0)
	assert.ErrorIs(t, err, datastructures.ErrIndexOutOfRange)

	sub, err := l.GetMany(nil)
	require.NoError(t, err)
	assert.Zero(t, sub.Len())
}
