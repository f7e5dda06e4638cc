package cmd

import (
	"os"
	"time"

	"github.com/extremtechniker/mailtxt/app"
	"github.com/extremtechniker/mailtxt/logger"
	"github.com/extremtechniker/mailtxt/resolver"
	"github.com/extremtechniker/mailtxt/store"
	"github.com/extremtechniker/mailtxt/util"
	"github.com/spf13/cobra"
)

type Options struct {
	LogLevel   string
	Output     string
	Backend    string
	LookupCmd  string
	Nameserver string
	Timeout    time.Duration
	Cache      bool
	PgUrl      string
}

var opts Options

func RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "mailtxt",
		Short: "Look up SPF, DMARC and DKIM TXT records for a domain",
		Long: "Prompts for a domain, queries its SPF, DMARC (_dmarc) and DKIM\n" +
			"(default._domainkey) TXT records, prints them and appends them to a log file.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitLogger(opts.LogLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps(cmd.Context())
			if err != nil {
				return err
			}
			defer d.Close()

			s := &app.Session{
				Resolver:  d.Resolver,
				Persister: d.Persister,
				Target:    opts.Output,
				In:        os.Stdin,
				Out:       os.Stdout,
			}
			return s.Run(cmd.Context())
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.LogLevel, "log-level", util.MustGetenv("LOG_LEVEL", "warn"), "Log level (debug, info, warn, error)")
	f.StringVar(&opts.Output, "output", util.MustGetenv("DNS_RECORDS_FILE", store.DefaultFile), "File that results are appended to")
	f.StringVar(&opts.Backend, "lookup", util.MustGetenv("LOOKUP_BACKEND", "exec"), "TXT lookup backend (exec, dns, doh)")
	f.StringVar(&opts.LookupCmd, "lookup-cmd", util.MustGetenv("LOOKUP_CMD", resolver.DefaultLookupCommand), "Lookup utility run by the exec backend")
	f.StringVar(&opts.Nameserver, "nameserver", util.MustGetenv("DNS_NAMESERVER", ""), "Nameserver for the dns backend (default from /etc/resolv.conf)")
	f.DurationVar(&opts.Timeout, "timeout", util.GetenvDuration("DNS_TIMEOUT", resolver.DefaultTimeout), "Per-query timeout for the dns backend")
	f.BoolVar(&opts.Cache, "cache", util.GetenvBool("REDIS_CACHE", false), "Cache lookup answers in Redis (REDIS_ADDR, REDIS_PASS, REDIS_DB, CACHE_TTL)")
	f.StringVar(&opts.PgUrl, "pg", util.MustGetenv("PG_URL", ""), "Postgres URL for saving report history")
	return root
}
