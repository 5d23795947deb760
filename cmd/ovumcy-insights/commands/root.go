package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/ovumcy-insights/internal/config"
	"github.com/terraincognita07/ovumcy-insights/internal/logging"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "ovumcy-insights",
	Short: "Cycle statistics and period predictions over logged period data",
	Long: `ovumcy-insights derives cycles from logged period days and turns them into
statistics, next-period predictions, late-period guidance, irregularity flags,
symptom timing, fertile window estimates and lifestyle summaries.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		if err := logging.Init(verbose, cfg.LogsFolder); err != nil {
			log.Warn().Err(err).Msg("file logging disabled")
		}

		log.Debug().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Str("command", cmd.Name()).
			Msg("ovumcy-insights starting")
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	rootCmd.AddCommand(serveCmd, mcpCmd, reportCmd, tokenCmd, secretCmd)
}
