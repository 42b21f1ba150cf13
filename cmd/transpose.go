package cmd

import (
	"github.com/jsphweid/chordsheet/logger"
	"github.com/jsphweid/chordsheet/transpose"
	"github.com/jsphweid/chordsheet/util"
	"github.com/spf13/cobra"
)

var (
	semitones    int
	keyFlag      string
	spellingFlag string
	colorFlag    bool
)

func init() {
	transposeCmd.Flags().IntVarP(&semitones, "semitones", "s", 0, "semitones to shift by, negative for down")
	transposeCmd.Flags().StringVarP(&keyFlag, "key", "k", "", "key the sheet is written in, guessed when empty")
	transposeCmd.Flags().StringVar(&spellingFlag, "spelling", "", "key, sharps or flats (default from SPELLING)")
	transposeCmd.Flags().BoolVar(&colorFlag, "color", true, "highlight chord rows on a terminal")
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose [file]",
	Short: "Transposes a chord sheet",
	Long:  `Transposes a chord sheet read from a file or stdin and prints it as stacked text.`,
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
		logger.Debug("transposing",
			logger.String("key", keyFlag),
			logger.String("target", transpose.TargetKey(keyFlag, semitones)),
			logger.String("interval", transpose.IntervalName(semitones)))
		writeSheet(cmd.OutOrStdout(), transposeText(t, string(data), keyFlag, semitones), colorFlag)
		return nil
	},
}
