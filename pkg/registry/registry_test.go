package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestItem is a simple type for testing
type TestItem struct {
	ID   int
	Name string
}

func TestNew(t *testing.T) {
	reg := New[TestItem]()

	require.NotNil(t, reg)
	assert.Equal(t, 0, reg.Count())
	assert.Empty(t, reg.All())
}

func TestRegister_KeepsInsertionOrderAndDuplicates(t *testing.T) {
	reg := New[TestItem]()

	reg.Register(TestItem{ID: 2, Name: "b"})
	reg.Register(TestItem{ID: 1, Name: "a"})
	reg.Register(TestItem{ID: 2, Name: "b"})

	assert.Equal(t, 3, reg.Count())
	assert.Equal(t, []TestItem{
		{ID: 2, Name: "b"},
		{ID: 1, Name: "a"},
		{ID: 2, Name: "b"},
	}, reg.All())
}

func TestAll_ReturnsSnapshot(t *testing.T) {
	reg := New[TestItem]()
	reg.Register(TestItem{ID: 1})

	snapshot := reg.All()
	snapshot[0].ID = 99

	assert.Equal(t, 1, reg.All()[0].ID, "mutating a snapshot must not leak into the registry")
}

func TestFilter(t *testing.T) {
	reg := New[TestItem]()
	for i := 0; i < 6; i++ {
		reg.Register(TestItem{ID: i})
	}

	even := reg.Filter(func(item TestItem) bool { return item.ID%2 == 0 })
	assert.Equal(t, []TestItem{{ID: 0}, {ID: 2}, {ID: 4}}, even)

	none := reg.Filter(func(TestItem) bool { return false })
	assert.Empty(t, none)
}

func TestConcurrentRegistration(t *testing.T) {
	reg := New[TestItem]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reg.Register(TestItem{ID: i, Name: fmt.Sprintf("item%d", i)})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, reg.Count())
}
