package resolver

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
)

const fallbackNameserver = "1.1.1.1:53"

// SystemNameserver returns the first nameserver from /etc/resolv.conf,
// or a public resolver when none is configured.
func SystemNameserver() string {
	config, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil || len(config.Servers) == 0 {
		return fallbackNameserver
	}
	return net.JoinHostPort(config.Servers[0], config.Port)
}

// DNSLookup queries nameserver directly. The answer section is rendered
// in zone-file presentation format, one record per line, so TXT strings
// come back quoted just like in nslookup output.
func DNSLookup(nameserver string, timeout time.Duration) Lookup {
	if nameserver == "" {
		nameserver = SystemNameserver()
	}
	if _, _, err := net.SplitHostPort(nameserver); err != nil {
		nameserver = net.JoinHostPort(nameserver, "53")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := &dns.Client{Timeout: timeout}

	return func(ctx context.Context, name string) (string, error) {
		m := new(dns.Msg)
		m.SetQuestion(dns.Fqdn(name), dns.TypeTXT)
		m.RecursionDesired = true
		m.SetEdns0(4096, false)

		r, _, err := client.ExchangeContext(ctx, m, nameserver)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrLookupFailed, nameserver, err)
		}
		if r.Rcode != dns.RcodeSuccess {
			return "", fmt.Errorf("%w: %s answered %s", ErrLookupFailed, nameserver, dns.RcodeToString[r.Rcode])
		}

		var sb strings.Builder
		for _, rr := range r.Answer {
			if txt, ok := rr.(*dns.TXT); ok {
				sb.WriteString(txt.String())
				sb.WriteByte('\n')
			}
		}
		return sb.String(), nil
	}
}
