package note

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPitchClassOfBothSpellings(t *testing.T) {
	cases := map[string]PitchClass{
		"C": 0, "B#": 0, "C#": 1, "Db": 1, "D": 2, "D#": 3, "Eb": 3,
		"E": 4, "Fb": 4, "E#": 5, "F": 5, "F#": 6, "Gb": 6, "G": 7,
		"G#": 8, "Ab": 8, "A": 9, "A#": 10, "Bb": 10, "B": 11, "Cb": 11,
		"C##": 2, "Dbb": 0,
	}
	for name, want := range cases {
		t.Run(fmt.Sprintf("pitch class of %v", name), func(t *testing.T) {
			pc, err := PitchClassOf(name)
			assert.NoError(t, err)
			assert.Equal(t, want, pc)
		})
	}
}

func TestPitchClassOfRejectsGarbage(t *testing.T) {
	for _, name := range []string{"", "H", "c", "C#b", "Cbbb", "Cm"} {
		_, err := PitchClassOf(name)
		assert.True(t, errors.Is(err, ErrInvalidNote), name)
	}
}

func TestSimplifyCollapsesDoubles(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("D", Simplify("C##"))
	assert.Equal("C", Simplify("Dbb"))
	assert.Equal("G", Simplify("F##"))
	assert.Equal("F#", Simplify("E##"))
	assert.Equal("Bb", Simplify("Cbb"))
	assert.Equal("C#", Simplify("C#"))
}

func TestScalesAreSpelledByLetter(t *testing.T) {
	assert := assert.New(t)

	scale, err := ScaleOf("F#")
	assert.NoError(err)
	assert.Equal([7]string{"F#", "G#", "A#", "B", "C#", "D#", "E#"}, scale)

	scale, _ = ScaleOf("Ab")
	assert.Equal([7]string{"Ab", "Bb", "C", "Db", "Eb", "F", "G"}, scale)

	scale, _ = ScaleOf("Cb")
	assert.Equal([7]string{"Cb", "Db", "Eb", "Fb", "Gb", "Ab", "Bb"}, scale)

	scale, _ = ScaleOf("Em")
	assert.Equal([7]string{"E", "F#", "G", "A", "B", "C", "D"}, scale)
}

func TestAccidentalPreference(t *testing.T) {
	assert := assert.New(t)
	pref, _ := AccidentalPreference("C")
	assert.Equal(PreferNone, pref)
	pref, _ = AccidentalPreference("D")
	assert.Equal(PreferSharp, pref)
	pref, _ = AccidentalPreference("Gm")
	assert.Equal(PreferFlat, pref)

	_, err := AccidentalPreference("H")
	assert.True(errors.Is(err, ErrUnknownKey))
}

func TestScaleCopiesCannotMutateTable(t *testing.T) {
	scale, _ := ScaleOf("C")
	scale[0] = "X"
	again, _ := ScaleOf("C")
	assert.Equal(t, "C", again[0])
}

func TestStandardKeyNames(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Ab", StandardKeyName(8, false))
	assert.Equal("F#", StandardKeyName(6, false))
	assert.Equal("G#m", StandardKeyName(8, true))
	assert.Equal("B", StandardKeyName(-1, false))
	for _, name := range StandardMajorKeys() {
		_, err := LookupKey(name)
		assert.NoError(err, name)
	}
}

func TestSplitKey(t *testing.T) {
	root, minor := SplitKey("F#m")
	assert.Equal(t, "F#", root)
	assert.True(t, minor)
	root, minor = SplitKey("Bb")
	assert.Equal(t, "Bb", root)
	assert.False(t, minor)
}
