// Package align converts between author text and chord/lyric lines with
// explicit chord columns. Two text conventions are read: a chord row stacked
// above its lyric row, and inline [Chord] markers. Text is always written back
// in the stacked form.
package align

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jsphweid/chordsheet/model"
	"github.com/jsphweid/chordsheet/words"
)

var bracketChord = regexp.MustCompile(`\[([^\]]+)\]`)

func Parse(text string) []model.ChordLyricLine {
	return ParseWith(words.Default(), text)
}

// ParseWith is Parse with a caller-chosen word filter.
//
// One blank line between entries is only a separator. Two or more in a row
// become a single empty line; blanks at either end are dropped.
func ParseWith(p words.Policy, text string) []model.ChordLyricLine {
	brackets := strings.Contains(text, "[") && strings.Contains(text, "]")
	raw := strings.Split(text, "\n")

	var res []model.ChordLyricLine
	var blanks int
	for i := 0; i < len(raw); i++ {
		line := raw[i]
		if isBlank(line) {
			blanks++
			continue
		}
		if blanks >= 2 && len(res) > 0 {
			res = append(res, model.ChordLyricLine{})
		}
		blanks = 0

		if brackets {
			if l, ok := parseBracketLine(p, line); ok {
				res = append(res, l)
				continue
			}
		}
		if !p.IsChordRow(line) {
			res = append(res, model.ChordLyricLine{Lyrics: line})
			continue
		}
		if i+1 < len(raw) && isLyricRow(p, raw[i+1], brackets) {
			lyrics := raw[i+1]
			res = append(res, model.ChordLyricLine{
				Chords:         line,
				Lyrics:         lyrics,
				ChordPositions: Positions(line, lyrics),
			})
			i++
			continue
		}
		res = append(res, model.ChordLyricLine{Chords: line})
	}
	return res
}

// ToText writes lines back as stacked text, a blank line between entries.
// The raw Chords row is written, never one rebuilt from ChordPositions, so
// hand-made spacing survives.
func ToText(lines []model.ChordLyricLine) string {
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(l.Chords)
		if l.Chords != "" && l.Lyrics != "" {
			b.WriteByte('\n')
		}
		b.WriteString(l.Lyrics)
	}
	return b.String()
}

// Positions scans a chord row for runs of non-space characters and records
// each run at its column. Columns past the end of the lyrics are pulled back
// to the end, which can leave several chords on one column.
func Positions(chordRow, lyrics string) []model.ChordPosition {
	limit := utf8.RuneCountInString(lyrics)
	runes := []rune(chordRow)
	var res []model.ChordPosition
	for i := 0; i < len(runes); {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}
		j := i
		for j < len(runes) && !unicode.IsSpace(runes[j]) {
			j++
		}
		pos := i
		if pos > limit {
			pos = limit
		}
		res = append(res, model.ChordPosition{Chord: string(runes[i:j]), Position: pos})
		i = j
	}
	return res
}

// RenderChordRow lays chords out at their columns. A chord that would touch or
// overlap the previous one is pushed one space past it.
func RenderChordRow(positions []model.ChordPosition) string {
	var b strings.Builder
	var col int
	for _, p := range positions {
		if col > 0 && p.Position <= col {
			b.WriteByte(' ')
			col++
		}
		for col < p.Position {
			b.WriteByte(' ')
			col++
		}
		b.WriteString(p.Chord)
		col += utf8.RuneCountInString(p.Chord)
	}
	return b.String()
}

// parseBracketLine pulls [Chord] markers out of a line. Every removed marker
// moves the rest of the line left by its length, so positions are taken
// against the text with earlier markers already gone. Brackets holding
// something that isn't a chord ("[Coro]") stay in the lyrics.
func parseBracketLine(p words.Policy, line string) (model.ChordLyricLine, bool) {
	var positions []model.ChordPosition
	var clean strings.Builder
	var removed, last int
	for _, m := range bracketChord.FindAllStringSubmatchIndex(line, -1) {
		chord := line[m[2]:m[3]]
		if !p.IsChord(chord) {
			continue
		}
		clean.WriteString(line[last:m[0]])
		start := utf8.RuneCountInString(line[:m[0]])
		positions = append(positions, model.ChordPosition{Chord: chord, Position: start - removed})
		removed += utf8.RuneCountInString(chord) + 2
		last = m[1]
	}
	if len(positions) == 0 {
		return model.ChordLyricLine{}, false
	}
	clean.WriteString(line[last:])
	return model.ChordLyricLine{
		Chords:         RenderChordRow(positions),
		Lyrics:         clean.String(),
		ChordPositions: positions,
	}, true
}

func isLyricRow(p words.Policy, line string, brackets bool) bool {
	if isBlank(line) || p.IsChordRow(line) {
		return false
	}
	if brackets {
		if _, ok := parseBracketLine(p, line); ok {
			return false
		}
	}
	return true
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
