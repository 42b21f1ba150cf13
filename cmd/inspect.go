package cmd

import (
	"fmt"

	"github.com/jsphweid/chordsheet/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE.mid",
	Short: "Inspects an exported practice track",
	Long:  `Lists the chords, roots and bass notes of a MIDI file written by export.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		for _, e := range events {
			fmt.Fprintf(cmd.OutOrStdout(), "chord: %v root: %v bass: %v\n", e.Chord, e.Root, e.Bass)
		}
		return nil
	},
}
