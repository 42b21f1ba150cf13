package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jsphweid/chordsheet/align"
	"github.com/jsphweid/chordsheet/constants"
	"github.com/jsphweid/chordsheet/song"
	"github.com/jsphweid/chordsheet/transpose"
	"github.com/jsphweid/chordsheet/words"
)

var chordColor = color.New(color.FgCyan, color.Bold)

// newTransposer uses the flag value when given, SPELLING otherwise.
func newTransposer(spelling string) (*transpose.Transposer, error) {
	if spelling == "" {
		spelling = constants.GetSpelling()
	}
	s, err := transpose.ParseSpelling(spelling)
	if err != nil {
		return nil, err
	}
	return transpose.New(transpose.WithSpelling(s)), nil
}

func transposeText(t *transpose.Transposer, text string, key string, semitones int) string {
	s := song.FromLines(key, align.Parse(text))
	return align.ToText(song.Lines(song.TransposeWith(t, s, semitones)))
}

// writeSheet prints text, highlighting chord rows when colorize is set and
// the output is a terminal.
func writeSheet(w io.Writer, text string, colorize bool) {
	for _, line := range strings.Split(text, "\n") {
		if colorize && words.IsChordRow(line) {
			chordColor.Fprintln(w, line)
			continue
		}
		fmt.Fprintln(w, line)
	}
}

func argOrStdin(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
