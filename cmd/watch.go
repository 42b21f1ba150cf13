package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/jsphweid/chordsheet/constants"
	"github.com/jsphweid/chordsheet/logger"
	"github.com/jsphweid/chordsheet/util"
)

func init() {
	watchCmd.Flags().IntVarP(&semitones, "semitones", "s", 0, "semitones to shift by")
	watchCmd.Flags().StringVarP(&keyFlag, "key", "k", "", "key the sheet is written in")
	watchCmd.Flags().StringVar(&spellingFlag, "spelling", "", "key, sharps or flats")
	watchCmd.Flags().BoolVar(&colorFlag, "color", true, "highlight chord rows on a terminal")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Re-prints a transposed sheet whenever the file changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := newTransposer(spellingFlag)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		render := func() {
			data, err := util.ReadInput(args[0])
			if err != nil {
				logger.Warn("could not read sheet", logger.String("path", args[0]), logger.ErrorField(err))
				return
			}
			fmt.Fprintln(out, "----")
			writeSheet(out, transposeText(t, string(data), keyFlag, semitones), colorFlag)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		wait := time.Duration(constants.GetWatchDebounceMillis()) * time.Millisecond
		return watchFile(ctx, args[0], wait, render)
	},
}

// watchFile calls render once, then again after each burst of writes to path
// has been quiet for wait. It returns when ctx is done.
func watchFile(ctx context.Context, path string, wait time.Duration, render func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create watcher: %w", err)
	}
	defer watcher.Close()

	// editors often replace the file, so watch the directory
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("could not watch %v: %w", path, err)
	}

	target := filepath.Clean(path)
	debounced := debounce.New(wait)
	render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				debounced(render)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", logger.ErrorField(err))
		}
	}
}

