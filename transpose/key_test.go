package transpose

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetKey(t *testing.T) {
	cases := []struct {
		key       string
		semitones int
		want      string
	}{
		{"G", 1, "Ab"},
		{"G", -1, "F#"},
		{"G", 13, "Ab"},
		{"Em", 3, "Gm"},
		{"Am", -2, "Gm"},
		{"C#", 1, "D"},
		{"G", 0, "G"},
		{"H", 2, "H"},
		{"", 2, ""},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v %+d", c.key, c.semitones), func(t *testing.T) {
			assert.Equal(t, c.want, TargetKey(c.key, c.semitones))
		})
	}
}

func TestIntervalName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Unison", IntervalName(0))
	assert.Equal("Minor 2nd up", IntervalName(1))
	assert.Equal("Major 2nd down", IntervalName(-2))
	assert.Equal("Tritone up", IntervalName(6))
	assert.Equal("Octave down", IntervalName(-12))
	assert.Equal("Minor 2nd up", IntervalName(13))
	assert.Equal("Perfect 5th up", IntervalName(math.MaxInt))
	assert.Equal("Minor 6th down", IntervalName(math.MinInt))
}

func TestExtremeShiftsReduceFirst(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("G", TargetKey("C", math.MaxInt))
	assert.Equal("E", TargetKey("C", math.MinInt))
	assert.Equal("C", Note("F", math.MaxInt, "", ""))
	assert.Equal("A", Note("F", math.MinInt, "", ""))
}

func TestDetectKey(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("G", DetectKey([]string{"C", "D", "G2/B", "Em7", "D"}))
	assert.Equal("C", DetectKey([]string{"Am", "F", "C", "G"}))
	assert.Equal("Eb", DetectKey([]string{"Eb", "Ab", "Bb7", "Cm"}))
	assert.Equal("", DetectKey(nil))
	assert.Equal("", DetectKey([]string{"H", "x2"}))
}
