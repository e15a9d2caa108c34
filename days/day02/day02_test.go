package day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = "11-22,95-115,998-1012,1188511880-1188511890,222220-222224," +
	"1698522-1698528,446443-446449,38593856-38593862,565653-565659," +
	"824824821-824824827,2121212118-2121212124\n"

func TestExample(t *testing.T) {
	ids, err := parseIDs(example)
	require.NoError(t, err)

	one, err := sumDoubled(ids)
	require.NoError(t, err)
	assert.Equal(t, uint64(1227775554), one)

	two, err := sumRepeating(ids)
	require.NoError(t, err)
	assert.Equal(t, uint64(4174379265), two)
}

func TestPatterns(t *testing.T) {
	tests := []struct {
		id        uint64
		doubled   bool
		repeating bool
	}{
		{11, true, true},
		{1010, true, true},
		{111, false, true},
		{824824824, false, true},
		{12, false, false},
		{7, false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.doubled, isDoubled(tt.id), "doubled %d", tt.id)
		assert.Equal(t, tt.repeating, isRepeating(tt.id), "repeating %d", tt.id)
	}
}

func TestParseIDs_Invalid(t *testing.T) {
	_, err := parseIDs("11-22,95")
	assert.Error(t, err)
}
