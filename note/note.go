// Package note holds the pitch-class and key-signature tables the
// transposer spells notes against. Everything here is read-only after init.
package note

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/chordsheet/util"
)

var ErrInvalidNote = errors.New("invalid note")

type PitchClass int

var letterClass = map[byte]PitchClass{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// spellings outside the usual twelve that still name a real pitch class
var theoretical = map[string]string{
	"E#": "F",
	"B#": "C",
	"Fb": "E",
	"Cb": "B",
}

func parse(name string) (letter byte, offset int, err error) {
	if len(name) == 0 {
		return 0, 0, fmt.Errorf("%w: empty", ErrInvalidNote)
	}
	letter = name[0]
	if _, ok := letterClass[letter]; !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidNote, name)
	}
	acc := name[1:]
	if len(acc) > 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidNote, name)
	}
	switch acc {
	case "", "#", "##":
		offset = len(acc)
	case "b", "bb":
		offset = -len(acc)
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidNote, name)
	}
	return letter, offset, nil
}

// PitchClassOf maps any spelling, including the theoretical E#, B#, Fb and Cb
// and double accidentals, to its pitch class.
func PitchClassOf(name string) (PitchClass, error) {
	letter, offset, err := parse(name)
	if err != nil {
		return 0, err
	}
	return util.Mod(letterClass[letter]+PitchClass(offset), 12), nil
}

func Sharp(pc PitchClass) string {
	return sharpNames[util.Mod(pc, 12)]
}

func Flat(pc PitchClass) string {
	return flatNames[util.Mod(pc, 12)]
}

// Natural returns the letter name of pc when it has one.
func Natural(pc PitchClass) (string, bool) {
	name := sharpNames[util.Mod(pc, 12)]
	return name, len(name) == 1
}

// IsTheoretical reports whether name is one of E#, B#, Fb, Cb.
func IsTheoretical(name string) bool {
	_, ok := theoretical[name]
	return ok
}

// NaturalOf returns the natural equivalent of a theoretical spelling, or name.
func NaturalOf(name string) string {
	if n, ok := theoretical[name]; ok {
		return n
	}
	return name
}

// Simplify collapses a doubled accidental (C##, Dbb) to a natural or a single
// accidental. Other names are returned as is.
func Simplify(name string) string {
	_, offset, err := parse(name)
	if err != nil || util.Abs(offset) < 2 {
		return name
	}
	pc, _ := PitchClassOf(name)
	if n, ok := Natural(pc); ok {
		return n
	}
	if offset > 0 {
		return Sharp(pc)
	}
	return Flat(pc)
}

// IsValid reports whether name parses as a note.
func IsValid(name string) bool {
	_, _, err := parse(name)
	return err == nil
}

func letterIndex(letter byte) int {
	return strings.IndexByte("CDEFGAB", letter)
}
