package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/chordsheet/align"
	"github.com/jsphweid/chordsheet/chord"
	"github.com/jsphweid/chordsheet/model"
	"github.com/jsphweid/chordsheet/song"
	"github.com/jsphweid/chordsheet/transpose"
	"github.com/jsphweid/chordsheet/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Creates a report",
	Long:  `Creates a report on a chord sheet: line kinds, chords used and the guessed key.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := util.ReadInput(argOrStdin(args))
		if err != nil {
			return err
		}
		printReport(cmd.OutOrStdout(), analyzeSheet(align.Parse(string(data))))
		return nil
	},
}

type sheetReport struct {
	numLines      int
	numPairs      int
	numChordsOnly int
	numLyricsOnly int
	chordCounts   map[string]int
	unparsable    []string
	detectedKey   string
}

func analyzeSheet(lines []model.ChordLyricLine) sheetReport {
	report := sheetReport{chordCounts: make(map[string]int)}
	t := transpose.New()
	for _, line := range lines {
		report.numLines += 1
		switch {
		case line.Chords != "" && line.Lyrics != "":
			report.numPairs += 1
		case line.Chords != "":
			report.numChordsOnly += 1
		case line.Lyrics != "":
			report.numLyricsOnly += 1
		}
		for _, token := range t.Chords(line.Chords) {
			if _, err := chord.Parse(token); err != nil {
				report.unparsable = append(report.unparsable, token)
				continue
			}
			report.chordCounts[token] += 1
		}
	}
	report.detectedKey = t.DetectKey(song.AllChords(t, song.FromLines("", lines)))
	return report
}

func printReport(w io.Writer, report sheetReport) {
	counts := make([]int, 0, len(report.chordCounts))
	for _, n := range report.chordCounts {
		counts = append(counts, n)
	}
	fmt.Fprintf(w, "lines: %v\n", report.numLines)
	fmt.Fprintf(w, "chord/lyric pairs: %v\n", report.numPairs)
	fmt.Fprintf(w, "chords only: %v\n", report.numChordsOnly)
	fmt.Fprintf(w, "lyrics only: %v\n", report.numLyricsOnly)
	fmt.Fprintf(w, "chords: %v (%v distinct)\n", util.Sum(counts), len(report.chordCounts))
	for _, key := range util.SortedKeys(report.chordCounts) {
		fmt.Fprintf(w, "  %v: %v\n", key, report.chordCounts[key])
	}
	if len(report.unparsable) > 0 {
		fmt.Fprintf(w, "unparsable: %v\n", report.unparsable)
	}
	fmt.Fprintf(w, "detected key: %v\n", report.detectedKey)
}
