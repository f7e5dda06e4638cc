package cmd

import (
	"github.com/extremtechniker/mailtxt/api"
	"github.com/extremtechniker/mailtxt/util"
	"github.com/spf13/cobra"
)

func ApiCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "api",
		Short: "Serve TXT lookups over an authenticated HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := buildDeps(ctx)
			if err != nil {
				return err
			}
			defer d.Close()

			srv := &api.Server{
				Addr:      addr,
				Resolver:  d.Resolver,
				Persister: d.Persister,
				JwtSecret: []byte(util.GetJwtSecret()),
			}
			if d.Store != nil {
				srv.History = d.Store
			}
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "listen", util.MustGetenv("HTTP_SERVE", ":8080"), "HTTP listen address")
	return cmd
}
