package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/ovumcy-insights/internal/assistant"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the assistant tool server over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		serviceSet, closeDatabase, err := openServiceSet()
		if err != nil {
			return err
		}
		defer closeDatabase()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return assistant.NewServer(serviceSet.Insights, cfg.Location, Version).Run(ctx)
	},
}
