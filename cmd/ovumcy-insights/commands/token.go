package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/ovumcy-insights/internal/api"
)

var timeNow = time.Now

var (
	tokenUserID uint
	tokenTTL    time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenUserID == 0 {
			return errors.New("--user is required")
		}
		if err := cfg.ValidateSecretKey(); err != nil {
			return err
		}

		token, err := api.IssueToken([]byte(cfg.SecretKey), tokenUserID, tokenTTL, timeNow())
		if err != nil {
			return fmt.Errorf("issue token: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
		return err
	},
}

func init() {
	tokenCmd.Flags().UintVar(&tokenUserID, "user", 0, "user id the token authenticates")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", api.DefaultTokenTTL, "token lifetime")
}
