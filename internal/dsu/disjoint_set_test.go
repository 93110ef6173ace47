package dsu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnionMergesDistinctSets(t *testing.T) {
	// Arrange
	ds := New[int]()
	for i := 0; i < 6; i++ {
		ds.MakeSet(i)
	}

	// Act
	merged := ds.Union(0, 1)

	// Assert
	assert.True(t, merged)
	assert.Equal(t, ds.Find(0), ds.Find(1))
	assert.Equal(t, 5, ds.Count())
}

func TestUnionOnConnectedElementsIsNoop(t *testing.T) {
	ds := New[int]()
	ds.Union(0, 1)
	ds.Union(1, 2)

	merged := ds.Union(0, 2)

	assert.False(t, merged)
	assert.Equal(t, 1, ds.Count())
	assert.Equal(t, 3, ds.SetSize(0))
}

func TestFindCreatesSingletonsImplicitly(t *testing.T) {
	ds := New[string]()

	root := ds.Find("a")

	assert.Equal(t, "a", root)
	assert.Equal(t, 1, ds.Count())
}

func TestMakeSetIsIdempotent(t *testing.T) {
	ds := New[int]()
	ds.MakeSet(1)
	ds.Union(1, 2)

	ds.MakeSet(1)

	assert.True(t, ds.Connected(1, 2))
	assert.Equal(t, 1, ds.Count())
}

func TestFindEqualityPersists(t *testing.T) {
	ds := New[int]()
	ds.Union(1, 2)
	ds.Union(3, 4)
	ds.Union(2, 3)

	for i := 0; i < 3; i++ {
		assert.Equal(t, ds.Find(1), ds.Find(4))
	}
	assert.True(t, ds.Connected(1, 4))
	assert.False(t, ds.Connected(1, 5))
}

func TestSetsEnumeration(t *testing.T) {
	ds := New[int]()
	for i := 0; i < 5; i++ {
		ds.MakeSet(i)
	}
	ds.Union(0, 1)
	ds.Union(2, 3)

	sets := ds.Sets()

	assert.Len(t, sets, 3)
	assert.ElementsMatch(t, []int{0, 1}, sets[ds.Find(0)])
	assert.ElementsMatch(t, []int{2, 3}, sets[ds.Find(2)])
	assert.ElementsMatch(t, []int{4}, sets[ds.Find(4)])
}

func TestGenericKeys(t *testing.T) {
	type cell struct{ row, col int }
	ds := New[cell]()

	ds.Union(cell{0, 0}, cell{0, 1})
	ds.Union(cell{0, 1}, cell{1, 1})

	assert.True(t, ds.Connected(cell{0, 0}, cell{1, 1}))
	assert.Equal(t, 3, ds.SetSize(cell{0, 0}))
}
