package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/ovumcy-insights/internal/services"
)

var (
	reportUserID uint
	reportDate   string
	reportJSON   bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the insight summary for one user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if reportUserID == 0 {
			return errors.New("--user is required")
		}

		today := services.DateAtLocation(timeNow(), cfg.Location)
		if raw := strings.TrimSpace(reportDate); raw != "" {
			parsed, err := services.ParseDay(raw, cfg.Location)
			if err != nil {
				return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", raw)
			}
			today = parsed
		}

		serviceSet, closeDatabase, err := openServiceSet()
		if err != nil {
			return err
		}
		defer closeDatabase()

		insights, err := serviceSet.Insights.BuildForUser(cmd.Context(), reportUserID, today)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if reportJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(insights)
		}
		_, err = fmt.Fprint(out, services.FormatInsightsContext(insights))
		return err
	},
}

func init() {
	reportCmd.Flags().UintVar(&reportUserID, "user", 0, "user id to report on")
	reportCmd.Flags().StringVar(&reportDate, "date", "", "reference day as YYYY-MM-DD (default today)")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "print the full insight bundle as JSON")
}
