package cmd

import (
	"github.com/jsphweid/chordsheet/constants"
	"github.com/jsphweid/chordsheet/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordsheet",
	Short: "Chord sheet transposer",
	Long: `Transposes chord/lyric sheets and converts between stacked chord rows,
inline [Chord] markers and the positioned line model.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		constants.Load()
		logger.InitLogger(logger.Config{
			Level:      logger.LogLevel(constants.GetLogLevel()),
			OutputPath: constants.GetLogFile(),
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		})
	},
}

func Execute() {
	defer logger.Sync()
	cobra.CheckErr(rootCmd.Execute())
}
