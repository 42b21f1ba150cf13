package model

// Chord is one chord symbol split into its parts. Quality is kept verbatim.
type Chord struct {
	Root    string
	Quality string
	Bass    string
}

// ChordPosition anchors a chord to a character column of the lyric it sits over.
type ChordPosition struct {
	Chord    string `json:"chord"`
	Position int    `json:"position"`
}

type ChordLyricLine struct {
	// NOTE: Chords is the raw chord row as authored, kept so text round-trips
	// with its original spacing. ChordPositions is what renderers align with.
	Chords         string          `json:"chords"`
	Lyrics         string          `json:"lyrics"`
	ChordPositions []ChordPosition `json:"chordPositions,omitempty"`
}
