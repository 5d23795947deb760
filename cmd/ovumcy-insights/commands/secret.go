package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/ovumcy-insights/internal/security"
)

var secretLength int

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Generate a random SECRET_KEY value",
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, err := security.GenerateSecretKey(secretLength)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "SECRET_KEY=%s\n", secret)
		return err
	},
}

func init() {
	secretCmd.Flags().IntVar(&secretLength, "length", security.DefaultSecretKeyLength, "number of characters")
}
