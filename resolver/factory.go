package resolver

import (
	"fmt"
	"strings"
	"time"
)

const DefaultTimeout = 5 * time.Second

type Options struct {
	Backend    string // exec, dns or doh
	Command    string // exec backend binary
	Nameserver string // dns backend server, host[:port]
	Timeout    time.Duration
}

// NewLookup picks the lookup backend named by opts.Backend. The returned
// func releases backend resources and is always non-nil.
func NewLookup(opts Options) (Lookup, func(), error) {
	switch strings.ToLower(opts.Backend) {
	case "", "exec":
		return ExecLookup(opts.Command), func() {}, nil
	case "dns":
		return DNSLookup(opts.Nameserver, opts.Timeout), func() {}, nil
	case "doh":
		l, closeFn := DoHLookup()
		return l, closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unknown lookup backend %q (want exec, dns or doh)", opts.Backend)
	}
}
