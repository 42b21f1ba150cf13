// Package song applies the transposer across a whole song.
package song

import (
	"github.com/jsphweid/chordsheet/model"
	"github.com/jsphweid/chordsheet/note"
	"github.com/jsphweid/chordsheet/transpose"
	"github.com/jsphweid/chordsheet/util"
)

func Transpose(s model.Song, semitones int) model.Song {
	return TransposeWith(transpose.New(), s, semitones)
}

// TransposeWith returns a new song with every chord row and chord position
// shifted. The input is never modified. The declared key is trusted when it is
// a known key; otherwise the key is guessed from the song's chords.
func TransposeWith(t *transpose.Transposer, s model.Song, semitones int) model.Song {
	if util.Mod(semitones, 12) == 0 {
		return s
	}

	originalKey := s.Key
	declared := originalKey != ""
	if _, err := note.LookupKey(originalKey); err != nil {
		declared = false
		originalKey = t.DetectKey(AllChords(t, s))
	}
	targetKey := transpose.TargetKey(originalKey, semitones)

	res := s
	if declared {
		res.Key = targetKey
	}
	res.Sections = make([]model.Section, len(s.Sections))
	for i, section := range s.Sections {
		res.Sections[i] = transposeSection(t, section, semitones, originalKey, targetKey)
	}
	return res
}

func transposeSection(t *transpose.Transposer, section model.Section, semitones int, originalKey, targetKey string) model.Section {
	res := section
	if section.Lines == nil {
		return res
	}
	res.Lines = make([]model.ChordLyricLine, len(section.Lines))
	for i, line := range section.Lines {
		l := line
		l.Chords = t.LineInKey(line.Chords, semitones, originalKey, targetKey)
		if line.ChordPositions != nil {
			l.ChordPositions = make([]model.ChordPosition, len(line.ChordPositions))
			for j, p := range line.ChordPositions {
				l.ChordPositions[j] = model.ChordPosition{
					Chord:    t.Token(p.Chord, semitones, originalKey, targetKey),
					Position: p.Position,
				}
			}
		}
		res.Lines[i] = l
	}
	return res
}

// Ordered expands the song's sequence into sections in performance order,
// falling back to the sections as stored when there is no sequence.
func Ordered(s model.Song) []model.Section {
	if len(s.Sequence) == 0 {
		return s.Sections
	}
	byID := make(map[string]model.Section, len(s.Sections))
	for _, section := range s.Sections {
		byID[section.ID] = section
	}
	var res []model.Section
	for _, entry := range s.Sequence {
		section, ok := byID[entry.SectionID]
		if !ok {
			continue
		}
		for n := 0; n < max(entry.Repeat, 1); n++ {
			res = append(res, section)
		}
	}
	return res
}

// AllChords lists every chord token on every chord row, section by section
// as stored.
func AllChords(t *transpose.Transposer, s model.Song) []string {
	var res []string
	for _, section := range s.Sections {
		for _, line := range section.Lines {
			res = append(res, t.Chords(line.Chords)...)
		}
	}
	return res
}

// FromLines wraps loose lines in a single-section song.
func FromLines(key string, lines []model.ChordLyricLine) model.Song {
	return model.Song{
		Key:      key,
		Sections: []model.Section{{ID: "main", Lines: lines}},
	}
}

// Lines flattens a song's sections back into one list of lines.
func Lines(s model.Song) []model.ChordLyricLine {
	var res []model.ChordLyricLine
	for _, section := range s.Sections {
		res = append(res, section.Lines...)
	}
	return res
}

// OrderedChords lists chord tokens in performance order, see Ordered.
func OrderedChords(t *transpose.Transposer, s model.Song) []string {
	var res []string
	for _, section := range Ordered(s) {
		for _, line := range section.Lines {
			res = append(res, t.Chords(line.Chords)...)
		}
	}
	return res
}
