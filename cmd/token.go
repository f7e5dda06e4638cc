package cmd

import (
	"fmt"
	"time"

	"github.com/extremtechniker/mailtxt/api"
	"github.com/extremtechniker/mailtxt/util"
	"github.com/spf13/cobra"
)

func TokenCommand() *cobra.Command {
	var ttl string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generate a JWT token for HTTP API authentication",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			expDuration := api.DefaultTokenTTL
			if ttl != "" {
				var err error
				expDuration, err = time.ParseDuration(ttl)
				if err != nil {
					return fmt.Errorf("invalid ttl format: %w", err)
				}
			}

			tokenString, err := api.NewToken([]byte(util.GetJwtSecret()), expDuration)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Bearer "+tokenString)
			return nil
		},
	}

	cmd.Flags().StringVar(&ttl, "ttl", "", "Optional token TTL duration (e.g., 2h, 30m)")

	return cmd
}
