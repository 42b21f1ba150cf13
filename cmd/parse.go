package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jsphweid/chordsheet/align"
	"github.com/jsphweid/chordsheet/model"
	"github.com/jsphweid/chordsheet/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(formatCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Converts sheet text to JSON lines",
	Long:  `Converts stacked or [Chord] bracket text to JSON chord/lyric lines with chord positions.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := util.ReadInput(argOrStdin(args))
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(align.Parse(string(data)))
	},
}

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Converts JSON lines back to sheet text",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := util.ReadInput(argOrStdin(args))
		if err != nil {
			return err
		}
		lines, err := decodeLines(data)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), align.ToText(lines))
		return nil
	},
}

// decodeLines accepts either a bare array of lines or {"lines": [...]}.
func decodeLines(data []byte) ([]model.ChordLyricLine, error) {
	var lines []model.ChordLyricLine
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &lines); err != nil {
			return nil, fmt.Errorf("could not decode lines: %w", err)
		}
		return lines, nil
	}
	var body model.LinesBody
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("could not decode lines: %w", err)
	}
	return body.Lines, nil
}
