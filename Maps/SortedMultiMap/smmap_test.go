package SortedMultiMap

import (
	"errors"
	"testing"

	"github.com/g-m-twostay/go-index/Maps"
	"github.com/g-m-twostay/go-index/Trees"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedMultiMap_Allow(t *testing.T) {
	m := New[int, string](Trees.Allow)
	for _, v := range []string{"x", "y", "x", "z", "x"} {
		in, err := m.Add(3, v)
		require.NoError(t, err)
		assert.True(t, in)
	}
	m.Add(1, "a")
	m.Add(5, "b")
	assert.EqualValues(t, 7, m.Size())
	assert.Equal(t, 5, m.Count(3))
	assert.ElementsMatch(t, []string{"x", "y", "x", "z", "x"}, m.Get(3))
	assert.True(t, m.Has(3, "z"))
	assert.False(t, m.Has(3, "a"))

	assert.Equal(t, 3, m.RemoveAll(3, "x"))
	assert.ElementsMatch(t, []string{"y", "z"}, m.Get(3))
	assert.True(t, m.Remove(3, "y"))
	assert.False(t, m.Remove(3, "y"))
	assert.Equal(t, 1, m.RemoveKey(3))
	assert.Zero(t, m.RemoveKey(3))
	assert.Empty(t, m.Get(3))
	assert.False(t, m.HasKey(3))

	var keys []int
	m.Range(func(k int, _ string) bool {
		keys = append(keys, k)
		return true
	})
	assert.Equal(t, []int{1, 5}, keys)
	m.Clear()
	assert.Zero(t, m.Size())
}

func TestSortedMultiMap_Resolution(t *testing.T) {
	m := New[int, string](Trees.Ignore)
	in, err := m.Add(1, "a")
	assert.True(t, in)
	assert.NoError(t, err)
	in, err = m.Add(1, "a")
	assert.False(t, in)
	assert.NoError(t, err)
	m.Add(1, "b")
	assert.Equal(t, 2, m.Count(1))

	e := New[int, string](Trees.Error)
	e.Add(1, "a")
	_, err = e.Add(1, "a")
	var de *Trees.DuplicateElementError[Maps.Pair[int, string]]
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, 1, e.Count(1))
}
