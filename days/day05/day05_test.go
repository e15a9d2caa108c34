package day05

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `3-5
10-14
16-20
12-18

1
5
8
11
17
32
`

func TestExample(t *testing.T) {
	inv, err := parseInventory(example)
	require.NoError(t, err)

	one, err := countFresh(inv.First, inv.Second)
	require.NoError(t, err)
	assert.Equal(t, 3, one)

	two, err := countAllFresh(inv.First, inv.Second)
	require.NoError(t, err)
	assert.Equal(t, uint64(14), two)
}

func TestRangeSet(t *testing.T) {
	set := newRangeSet([]span{{10, 14}, {3, 5}, {6, 6}, {12, 18}})
	assert.Equal(t, rangeSet{{3, 6}, {10, 18}}, set)

	for _, id := range []uint64{3, 6, 10, 18} {
		assert.True(t, set.contains(id), "%d", id)
	}
	for _, id := range []uint64{0, 7, 9, 19} {
		assert.False(t, set.contains(id), "%d", id)
	}
}

func TestParseInventory_Invalid(t *testing.T) {
	_, err := parseInventory("3-5\n1\n")
	assert.Error(t, err)

	_, err = parseInventory("3:5\n\n1\n")
	assert.Error(t, err)
}
