package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/chordsheet/align"
	"github.com/jsphweid/chordsheet/song"
	"github.com/jsphweid/chordsheet/transpose"
	"github.com/jsphweid/chordsheet/util"
	"github.com/spf13/cobra"
)

var detectFlag bool

func init() {
	keyCmd.Flags().BoolVar(&detectFlag, "detect", false, "guess the key of a sheet instead")
	rootCmd.AddCommand(keyCmd)
}

var keyCmd = &cobra.Command{
	Use:   "key KEY SEMITONES | key --detect [file]",
	Short: "Shows where a key lands after transposing",
	Long:  `Shows where a key lands after transposing, e.g. "Key: G → Ab (Minor 2nd up)".`,
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if detectFlag {
			data, err := util.ReadInput(argOrStdin(args))
			if err != nil {
				return err
			}
			t := transpose.New()
			s := song.FromLines("", align.Parse(string(data)))
			fmt.Fprintln(cmd.OutOrStdout(), t.DetectKey(song.AllChords(t, s)))
			return nil
		}
		if len(args) != 2 {
			return fmt.Errorf("need a key and a number of semitones")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("semitones must be a whole number: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), keyLabel(args[0], n))
		return nil
	},
}

func keyLabel(key string, semitones int) string {
	return fmt.Sprintf("Key: %v → %v (%v)", key, transpose.TargetKey(key, semitones), transpose.IntervalName(semitones))
}
