package transpose

import (
	"github.com/jsphweid/chordsheet/chord"
	"github.com/jsphweid/chordsheet/logger"
	"github.com/jsphweid/chordsheet/note"
	"github.com/jsphweid/chordsheet/util"
)

var intervalNames = [12]string{
	"Unison", "Minor 2nd", "Major 2nd", "Minor 3rd", "Major 3rd", "Perfect 4th",
	"Tritone", "Perfect 5th", "Minor 6th", "Major 6th", "Minor 7th", "Major 7th",
}

// TargetKey moves a key's tonic and snaps it to the usual name for that key,
// keeping a minor suffix. Unknown keys come back as given.
func TargetKey(originalKey string, semitones int) string {
	if util.Mod(semitones, 12) == 0 {
		return originalKey
	}
	root, minor := note.SplitKey(originalKey)
	pc, err := note.PitchClassOf(root)
	if err != nil {
		if originalKey != "" {
			logger.Debug("unknown key", logger.String("key", originalKey), logger.ErrorField(err))
		}
		return originalKey
	}
	return note.StandardKeyName(pc+note.PitchClass(util.Mod(semitones, 12)), minor)
}

func IntervalName(semitones int) string {
	if semitones == 0 {
		return intervalNames[0]
	}
	dir := "up"
	if semitones < 0 {
		dir = "down"
	}
	n := util.Mod(semitones, 12)
	if semitones < 0 {
		n = util.Mod(-n, 12)
	}
	if n == 0 {
		return "Octave " + dir
	}
	return intervalNames[n] + " " + dir
}

// DetectKey guesses the major key a set of chords is in. Roots on I, IV and V
// count most, more so when the chord is major; minor chords on ii, iii and vi
// get a bonus too. Returns "" when nothing parses.
func (t *Transposer) DetectKey(chords []string) string {
	var best int
	var bestName string
	for _, name := range note.StandardMajorKeys() {
		key, _ := note.LookupKey(name)
		score := scoreKey(key, chords)
		if score > best {
			best = score
			bestName = name
		}
	}
	return bestName
}

func scoreKey(key note.Key, chords []string) int {
	var score int
	for _, token := range chords {
		c, err := chord.Parse(token)
		if err != nil {
			continue
		}
		root, _ := chord.Notes(c)
		degree := key.Degree(root)
		if degree < 0 {
			continue
		}
		score++
		switch degree {
		case 0, 3, 4:
			score += 2
			if chord.IsMajor(c) {
				score++
			}
		case 1, 2, 5:
			if !chord.IsMajor(c) {
				score++
			}
		}
	}
	return score
}

func DetectKey(chords []string) string {
	return defaultTransposer.DetectKey(chords)
}
