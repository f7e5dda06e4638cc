package cmd

import (
	"context"

	"github.com/extremtechniker/mailtxt/app"
	"github.com/extremtechniker/mailtxt/cache"
	"github.com/extremtechniker/mailtxt/db"
	"github.com/extremtechniker/mailtxt/logger"
	"github.com/extremtechniker/mailtxt/resolver"
	"github.com/extremtechniker/mailtxt/store"
)

// deps holds the collaborators shared by the commands.
type deps struct {
	Resolver  *resolver.Resolver
	Persister app.Persisters
	Store     *db.Store
	Cache     *cache.Cache

	closeLookup func()
}

func buildDeps(ctx context.Context) (*deps, error) {
	d := &deps{}

	lookup, closeLookup, err := resolver.NewLookup(resolver.Options{
		Backend:    opts.Backend,
		Command:    opts.LookupCmd,
		Nameserver: opts.Nameserver,
		Timeout:    opts.Timeout,
	})
	if err != nil {
		return nil, err
	}
	d.closeLookup = closeLookup

	if opts.Cache {
		c, err := cache.InitRedis(ctx)
		if err != nil {
			d.Close()
			return nil, err
		}
		d.Cache = c
		lookup = c.Wrap(lookup)
		logger.Logger.Debugf("redis cache enabled, ttl %s", c.TTL)
	}
	d.Resolver = resolver.New(lookup)

	d.Persister = app.Persisters{store.NewFile(opts.Output)}
	if opts.PgUrl != "" {
		s, err := db.InitPostgres(ctx, opts.PgUrl)
		if err != nil {
			d.Close()
			return nil, err
		}
		d.Store = s
		d.Persister = append(d.Persister, s)
	}
	return d, nil
}

func (d *deps) Close() {
	if d.closeLookup != nil {
		d.closeLookup()
	}
	if d.Store != nil {
		d.Store.Close()
	}
	if d.Cache != nil {
		if err := d.Cache.Close(); err != nil {
			logger.Logger.Warnf("closing redis: %v", err)
		}
	}
}
