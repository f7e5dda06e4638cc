package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/likexian/doh"
	dohdns "github.com/likexian/doh/dns"
)

const typeTXT = 16

// DoHLookup resolves names over DNS-over-HTTPS through Cloudflare. The
// returned func releases the DoH client.
func DoHLookup() (Lookup, func()) {
	c := doh.Use(doh.CloudflareProvider)

	lookup := func(ctx context.Context, name string) (string, error) {
		resp, err := c.Query(ctx, dohdns.Domain(name), dohdns.TypeTXT)
		if err != nil {
			return "", fmt.Errorf("%w: doh: %w", ErrLookupFailed, err)
		}
		return dohAnswerText(resp, name)
	}
	return lookup, c.Close
}

// dohAnswerText renders the TXT answers of resp one per line. Providers
// return TXT data in quoted form. A non-zero status is a failure.
func dohAnswerText(resp *dohdns.Response, name string) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: doh: empty response for %s", ErrLookupFailed, name)
	}
	if resp.Status != 0 {
		return "", fmt.Errorf("%w: doh status %d for %s", ErrLookupFailed, resp.Status, name)
	}

	var sb strings.Builder
	for _, a := range resp.Answer {
		if a.Type == typeTXT {
			sb.WriteString(a.Data)
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}
