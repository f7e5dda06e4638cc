package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/extremtechniker/mailtxt/db"
	"github.com/extremtechniker/mailtxt/report"
	"github.com/spf13/cobra"
)

func HistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <domain>",
		Short: "Show reports saved to Postgres for a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.PgUrl == "" {
				return errors.New("history needs a Postgres URL (--pg or PG_URL)")
			}
			ctx := cmd.Context()

			s, err := db.InitPostgres(ctx, opts.PgUrl)
			if err != nil {
				return err
			}
			defer s.Close()

			domain := strings.TrimSpace(args[0])
			reps, err := s.FetchReports(ctx, domain, limit)
			if err != nil {
				return err
			}
			if len(reps) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no saved reports for %s\n", domain)
				return nil
			}

			out := cmd.OutOrStdout()
			for _, rep := range reps {
				fmt.Fprintf(out, "\n%s", rep.CreatedAt.Local().Format("2006-01-02 15:04:05"))
				if err := report.Print(out, rep); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of reports to show (0 for all)")
	return cmd
}
