package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func part(day, n int, value string) PartEntry {
	return PartEntry{Day: day, Part: n, Run: func() (string, error) { return value, nil }}
}

func TestSubmitAndQuery_ByVariant(t *testing.T) {
	c := NewCatalog()

	Submit(c, ParseEntry{Day: 1, Populate: func(string) error { return nil }})
	Submit(c, part(1, 2, "second"))
	Submit(c, part(1, 1, "first"))
	Submit(c, BenchEntry{Day: 1, Part: 1, Run: func(text string) (string, error) { return text, nil }})

	parts := Query[PartEntry](c)
	require.Len(t, parts, 2)
	// registration order, not part order
	assert.Equal(t, 2, parts[0].Part)
	assert.Equal(t, 1, parts[1].Part)

	assert.Len(t, Query[ParseEntry](c), 1)
	assert.Len(t, Query[BenchEntry](c), 1)
}

func TestQuery_EmptyCatalog(t *testing.T) {
	c := NewCatalog()

	assert.Empty(t, Query[PartEntry](c))
	assert.Empty(t, Query[BenchEntry](c))
	assert.Empty(t, Query[ParseEntry](c))
	assert.Empty(t, c.Days())
}

func TestQueryDay_FiltersByDay(t *testing.T) {
	c := NewCatalog()
	Submit(c, part(3, 1, "a"))
	Submit(c, part(4, 1, "b"))
	Submit(c, part(3, 2, "c"))

	day3 := QueryDay[PartEntry](c, 3)
	require.Len(t, day3, 2)
	first, err := day3[0].Run()
	require.NoError(t, err)
	assert.Equal(t, "a", first)

	assert.Empty(t, QueryDay[PartEntry](c, 5))
}

func TestDays(t *testing.T) {
	c := NewCatalog()
	Submit(c, part(11, 1, ""))
	Submit(c, ParseEntry{Day: 2})
	Submit(c, part(2, 1, ""))
	Submit(c, BenchEntry{Day: 7, Part: 1})

	// bench entries never exist without a part entry, so they don't count
	assert.Equal(t, []int{2, 11}, c.Days())
	assert.True(t, c.HasDay(11))
	assert.False(t, c.HasDay(7))
}

func TestPartNumber(t *testing.T) {
	assert.Equal(t, 2, PartEntry{Part: 2}.PartNumber())
	assert.Equal(t, 1, BenchEntry{Part: 1}.PartNumber())
}

func TestDefault_IsStable(t *testing.T) {
	assert.Same(t, Default(), Default())
}
