package chord

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jsphweid/chordsheet/model"
	"github.com/jsphweid/chordsheet/note"
)

var ErrUnparsableChord = errors.New("unparsable chord")

// quality is lazy so a trailing "/X" is only taken as a bass when X is a note;
// "C6/9" keeps "6/9" as its quality
var grammar = regexp.MustCompile(`^([A-G][#b]?)(\S*?)(?:/([A-G][#b]?))?$`)

func Parse(s string) (model.Chord, error) {
	var c model.Chord
	m := grammar.FindStringSubmatch(s)
	if m == nil {
		return c, fmt.Errorf("%w: %q", ErrUnparsableChord, s)
	}
	if !note.IsValid(m[1]) || (m[3] != "" && !note.IsValid(m[3])) {
		return c, fmt.Errorf("%w: %q", ErrUnparsableChord, s)
	}
	c.Root = m[1]
	c.Quality = m[2]
	c.Bass = m[3]
	return c, nil
}

func String(c model.Chord) string {
	if c.Bass == "" {
		return c.Root + c.Quality
	}
	return c.Root + c.Quality + "/" + c.Bass
}

// IsMajor is true for a plain major triad or any quality that doesn't start
// with a minor/diminished marker ("maj7" is major, "m7" is not).
func IsMajor(c model.Chord) bool {
	q := c.Quality
	if strings.HasPrefix(q, "maj") || strings.HasPrefix(q, "M") {
		return true
	}
	for _, prefix := range []string{"m", "-", "dim", "°", "ø"} {
		if strings.HasPrefix(q, prefix) {
			return false
		}
	}
	return true
}

// Notes returns the chord's root and bass pitch classes; bass is -1 when absent.
func Notes(c model.Chord) (root note.PitchClass, bass note.PitchClass) {
	root, _ = note.PitchClassOf(c.Root)
	bass = -1
	if c.Bass != "" {
		bass, _ = note.PitchClassOf(c.Bass)
	}
	return root, bass
}
