package model

type Song struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Artist   string          `json:"artist,omitempty"`
	Key      string          `json:"key,omitempty"`
	Sections []Section       `json:"sections"`
	Sequence []SequenceEntry `json:"sequence,omitempty"`
}

type Section struct {
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	Lines []ChordLyricLine `json:"lines"`
}

// SequenceEntry places a section in the performance order. Repeat of 0 means once.
type SequenceEntry struct {
	SectionID string `json:"sectionId"`
	Repeat    int    `json:"repeat,omitempty"`
}
