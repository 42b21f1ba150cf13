package align

import (
	"strings"
	"testing"

	"github.com/jsphweid/chordsheet/model"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestBracketLineRoundTrip(t *testing.T) {
	assert := assert.New(t)
	first := Parse("[G]Mil [C]generaciones")
	assert.Equal([]model.ChordLyricLine{{
		Chords:         "G   C",
		Lyrics:         "Mil generaciones",
		ChordPositions: []model.ChordPosition{{Chord: "G", Position: 0}, {Chord: "C", Position: 4}},
	}}, first)

	second := Parse(ToText(first))
	assert.Equal(first[0].ChordPositions, second[0].ChordPositions)
	assert.Equal(first, second)
}

func TestBracketOffsetsCountCharacters(t *testing.T) {
	lines := Parse("Can[D]ta[Em7]ré [A7/C#]señor")
	assert := assert.New(t)
	assert.Len(lines, 1)
	assert.Equal("Cantaré señor", lines[0].Lyrics)
	assert.Equal([]model.ChordPosition{
		{Chord: "D", Position: 3},
		{Chord: "Em7", Position: 5},
		{Chord: "A7/C#", Position: 8},
	}, lines[0].ChordPositions)
	assert.Equal("   D Em7 A7/C#", lines[0].Chords)
}

func TestNonChordBracketsStayInLyrics(t *testing.T) {
	lines := Parse("[Coro] [G]Aleluya")
	assert.Equal(t, []model.ChordLyricLine{{
		Chords:         "       G",
		Lyrics:         "[Coro] Aleluya",
		ChordPositions: []model.ChordPosition{{Chord: "G", Position: 7}},
	}}, lines)
}

func TestStackedColumnFidelity(t *testing.T) {
	text := "G            Em7\nEn la mañana del domingo"
	lines := Parse(text)
	assert := assert.New(t)
	assert.Len(lines, 1)
	assert.Equal([]model.ChordPosition{{Chord: "G", Position: 0}, {Chord: "Em7", Position: 13}}, lines[0].ChordPositions)
	assert.Equal(text, ToText(lines))
}

func TestStackedRoundTrip(t *testing.T) {
	text := strings.Join([]string{
		"G      C",
		"Mil generaciones",
		"",
		"Em7",
		"",
		"Solo letra",
		"",
		"",
		"",
		"D  A/C#",
		"Fin del canto",
	}, "\n")
	lines := Parse(text)
	assert := assert.New(t)
	assert.Equal([]model.ChordLyricLine{
		{Chords: "G      C", Lyrics: "Mil generaciones", ChordPositions: []model.ChordPosition{{Chord: "G", Position: 0}, {Chord: "C", Position: 7}}},
		{Chords: "Em7"},
		{Lyrics: "Solo letra"},
		{},
		{Chords: "D  A/C#", Lyrics: "Fin del canto", ChordPositions: []model.ChordPosition{{Chord: "D", Position: 0}, {Chord: "A/C#", Position: 3}}},
	}, lines)
	assert.Equal(text, ToText(lines))
}

func TestBlankRunsCollapse(t *testing.T) {
	lines := Parse("\n\nG\nla\n\n\nC\nlo\n\n")
	assert := assert.New(t)
	assert.Len(lines, 3)
	assert.Equal(model.ChordLyricLine{}, lines[1])
	assert.Equal("G\nla\n\n\n\nC\nlo", ToText(lines))
}

func TestChordsPastLyricEndAreClamped(t *testing.T) {
	lines := Parse("C   G   D\nla")
	assert.Equal(t, []model.ChordPosition{{Chord: "C", Position: 0}, {Chord: "G", Position: 2}, {Chord: "D", Position: 2}}, lines[0].ChordPositions)
}

func TestMixedConventions(t *testing.T) {
	lines := Parse("G   C\nhola\n\n[D]adiós\n\nEm")
	assert := assert.New(t)
	assert.Len(lines, 3)
	assert.Equal("hola", lines[0].Lyrics)
	assert.Equal([]model.ChordPosition{{Chord: "D", Position: 0}}, lines[1].ChordPositions)
	assert.Equal(model.ChordLyricLine{Chords: "Em"}, lines[2])
}

func TestChordRowOverChordRowIsChordsOnly(t *testing.T) {
	lines := Parse("| G | C |\nAm  F")
	assert.Equal(t, []model.ChordLyricLine{{Chords: "| G | C |"}, {Chords: "Am  F"}}, lines)
}

func TestToText(t *testing.T) {
	lines := []model.ChordLyricLine{
		{Chords: "C", Lyrics: "la"},
		{Lyrics: "solo"},
		{Chords: "G"},
	}
	assert.Equal(t, "C\nla\n\nsolo\n\nG", ToText(lines))
	assert.Equal(t, "", ToText(nil))
}

func TestRenderChordRowSeparatesCollisions(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("G C", RenderChordRow([]model.ChordPosition{{Chord: "G", Position: 0}, {Chord: "C", Position: 0}}))
	assert.Equal("Em7 D", RenderChordRow([]model.ChordPosition{{Chord: "Em7", Position: 0}, {Chord: "D", Position: 2}}))
	assert.Equal("  A", RenderChordRow([]model.ChordPosition{{Chord: "A", Position: 2}}))
}

func chordRowGenerator() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		chords := rapid.SliceOfN(rapid.SampledFrom([]string{"C", "G", "Am", "F#m7", "Bb", "D/F#", "Esus4"}), 1, 5).Draw(t, "chords")
		var b strings.Builder
		for i, c := range chords {
			gap := rapid.IntRange(0, 6).Draw(t, "gap")
			if i > 0 {
				gap++
			}
			b.WriteString(strings.Repeat(" ", gap))
			b.WriteString(c)
		}
		return b.String()
	})
}

func lyricGenerator() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-zñ]{3,8}( [a-zñ]{3,8}){0,6}`)
}

func testStackedRoundTrip_Properties(t *rapid.T) {
	n := rapid.IntRange(1, 6).Draw(t, "entries")
	var parts []string
	for i := 0; i < n; i++ {
		switch rapid.IntRange(0, 2).Draw(t, "kind") {
		case 0:
			parts = append(parts, chordRowGenerator().Draw(t, "row")+"\n"+lyricGenerator().Draw(t, "lyrics"))
		case 1:
			parts = append(parts, chordRowGenerator().Draw(t, "row"))
		default:
			parts = append(parts, lyricGenerator().Draw(t, "lyrics"))
		}
	}
	text := strings.Join(parts, "\n\n")
	lines := Parse(text)
	if got := ToText(lines); got != text {
		t.Fatalf("round trip changed text:\n%q\n%q", text, got)
	}
	for _, l := range lines {
		limit := len([]rune(l.Lyrics))
		for _, p := range l.ChordPositions {
			if p.Position < 0 || p.Position > limit {
				t.Fatalf("position %v out of range for %q", p, l.Lyrics)
			}
		}
	}
}

func TestStackedRoundTripProperties(t *testing.T) {
	rapid.Check(t, testStackedRoundTrip_Properties)
}

func TestOneWordSpanishLinesStayLyrics(t *testing.T) {
	assert.Equal(t, []model.ChordLyricLine{{Lyrics: "Amén"}, {Lyrics: "Eres"}}, Parse("Amén\n\nEres"))
}
