package model

type ParseRequestBody struct {
	Text string `json:"text"`
}

type LinesBody struct {
	Lines []ChordLyricLine `json:"lines"`
}

type TextBody struct {
	Text string `json:"text"`
}

type TransposeSongRequestBody struct {
	Song      Song `json:"song"`
	Semitones int  `json:"semitones"`
}

type TransposeLineRequestBody struct {
	Line      string `json:"line"`
	Semitones int    `json:"semitones"`
	Key       string `json:"key,omitempty"`
}

type TransposeChordRequestBody struct {
	Chord       string `json:"chord"`
	Semitones   int    `json:"semitones"`
	OriginalKey string `json:"original_key,omitempty"`
	TargetKey   string `json:"target_key,omitempty"`
}

type TransposeResult struct {
	Result string `json:"result"`
}

type KeyResult struct {
	Key      string `json:"key"`
	Target   string `json:"target"`
	Interval string `json:"interval"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
