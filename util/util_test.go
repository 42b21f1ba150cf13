package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModIsNeverNegative(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(11, Mod(-1, 12))
	assert.Equal(0, Mod(-12, 12))
	assert.Equal(1, Mod(13, 12))
	assert.Equal(5, Mod(5, 12))
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"G": 1, "C": 2, "Em7": 3}
	assert.Equal(t, []string{"C", "Em7", "G"}, SortedKeys(m))
}

func TestAbsAndSum(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(3, Abs(-3))
	assert.Equal(3, Abs(3))
	assert.Equal(uint64(6), Sum([]int{1, 2, 3}))
}
