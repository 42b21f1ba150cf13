package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/chordsheet/align"
	"github.com/jsphweid/chordsheet/midi"
	"github.com/jsphweid/chordsheet/song"
	"github.com/jsphweid/chordsheet/util"
	"github.com/spf13/cobra"
)

var (
	outFlag   string
	titleFlag string
	bpmFlag   float64
)

func init() {
	exportCmd.Flags().StringVarP(&outFlag, "out", "o", "chords.mid", "MIDI file to write")
	exportCmd.Flags().StringVar(&titleFlag, "title", "", "track name")
	exportCmd.Flags().Float64Var(&bpmFlag, "bpm", 90, "tempo")
	exportCmd.Flags().IntVarP(&semitones, "semitones", "s", 0, "semitones to shift by first")
	exportCmd.Flags().StringVarP(&keyFlag, "key", "k", "", "key the sheet is written in")
	exportCmd.Flags().StringVar(&spellingFlag, "spelling", "", "key, sharps or flats")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Writes a root/bass practice track",
	Long:  `Writes a MIDI file with one bar per chord, sounding each chord's root over its bass.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := newTransposer(spellingFlag)
		if err != nil {
			return err
		}
		data, err := util.ReadInput(argOrStdin(args))
		if err != nil {
			return err
		}
		s := song.TransposeWith(t, song.FromLines(keyFlag, align.Parse(string(data))), semitones)

		f, err := os.Create(outFlag)
		if err != nil {
			return fmt.Errorf("could not create %v: %w", outFlag, err)
		}
		defer f.Close()

		chords := song.OrderedChords(t, s)
		if err := midi.Write(f, titleFlag, chords, bpmFlag); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %v chords to %v\n", len(chords), outFlag)
		return nil
	},
}
