package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/extremtechniker/mailtxt/logger"
	"github.com/extremtechniker/mailtxt/model"
)

// ErrLookupFailed is wrapped by backends when a lookup could not complete.
var ErrLookupFailed = errors.New("txt lookup failed")

// Lookup performs a TXT query for name and returns the backend's raw
// textual answer. TXT strings are expected to appear double quoted.
type Lookup func(ctx context.Context, name string) (string, error)

type Resolver struct {
	lookup Lookup
}

func New(lookup Lookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// QueryName joins prefix and domain into the owner name to query.
func QueryName(domain, prefix string) string {
	if prefix == "" {
		return domain
	}
	return prefix + "." + domain
}

// TXT queries the TXT records at prefix.domain. It never fails: lookup
// errors are rendered into the returned string and an answer without
// quoted data yields model.NotFound.
func (r *Resolver) TXT(ctx context.Context, domain, prefix string) string {
	name := QueryName(domain, prefix)

	raw, err := r.lookup(ctx, name)
	if err != nil {
		logger.Logger.Debugf("txt lookup for %s failed: %v", name, err)
		return fmt.Sprintf("查詢錯誤 %s: %v", name, err)
	}

	values := ExtractQuoted(raw)
	logger.Logger.Debugf("txt lookup for %s: %d values", name, len(values))
	if len(values) == 0 {
		return model.NotFound
	}
	return strings.Join(values, "\n")
}

// Report runs the SPF, DMARC and DKIM lookups for domain in order.
func (r *Resolver) Report(ctx context.Context, domain string) model.Report {
	return model.Report{
		Domain: domain,
		SPF:    r.TXT(ctx, domain, model.SPF.Prefix),
		DMARC:  r.TXT(ctx, domain, model.DMARC.Prefix),
		DKIM:   r.TXT(ctx, domain, model.DKIM.Prefix),
	}
}
