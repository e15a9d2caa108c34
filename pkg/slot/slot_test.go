package slot

import (
	"sync"
	"testing"

	"github.com/fluxehub/AdventOfCode2025/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recoverCode(t *testing.T, fn func()) (code errors.ErrorCode) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		code = errors.GetErrorCode(err)
	}()
	fn()
	return ""
}

func TestSlot_SetThenGet(t *testing.T) {
	var s Slot[[]int]
	assert.False(t, s.IsSet())

	s.Set([]int{3, 4, 5})

	assert.True(t, s.IsSet())
	assert.Equal(t, []int{3, 4, 5}, s.Get())
}

func TestSlot_DoubleSetIsInvariantViolation(t *testing.T) {
	var s Slot[string]
	s.Set("first")

	code := recoverCode(t, func() { s.Set("second") })

	assert.Equal(t, errors.ErrInvariant, code)
	assert.Equal(t, "first", s.Get(), "the first value must survive a rejected write")
}

func TestSlot_GetBeforeSetIsInvariantViolation(t *testing.T) {
	var s Slot[int]

	code := recoverCode(t, func() { _ = s.Get() })

	assert.Equal(t, errors.ErrInvariant, code)
}

func TestSlot_ZeroValueIsAValidWrite(t *testing.T) {
	var s Slot[int]
	s.Set(0)

	assert.True(t, s.IsSet())
	assert.Equal(t, 0, s.Get())
}

func TestSlot_ConcurrentReadersAfterSet(t *testing.T) {
	var s Slot[map[string]int]
	s.Set(map[string]int{"a": 1})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, 1, s.Get()["a"])
		}()
	}
	wg.Wait()
}

func TestSlot_ConcurrentWritersOnlyOneWins(t *testing.T) {
	var s Slot[int]

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		panics int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			defer func() {
				if recover() != nil {
					mu.Lock()
					panics++
					mu.Unlock()
				}
			}()
			s.Set(v)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 7, panics)
	assert.True(t, s.IsSet())
}
