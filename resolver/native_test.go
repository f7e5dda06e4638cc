package resolver

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extremtechniker/mailtxt/model"
)

// startTXTServer serves the given TXT records over UDP on a loopback port.
// Names not in records get NXDOMAIN.
func startTXTServer(t *testing.T, records map[string][]string) string {
	t.Helper()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	mux := dns.NewServeMux()
	mux.HandleFunc(".", func(w dns.ResponseWriter, req *dns.Msg) {
		m := new(dns.Msg)
		q := req.Question[0]
		txts, ok := records[q.Name]
		if !ok {
			m.SetRcode(req, dns.RcodeNameError)
			_ = w.WriteMsg(m)
			return
		}
		m.SetReply(req)
		for _, txt := range txts {
			m.Answer = append(m.Answer, &dns.TXT{
				Hdr: dns.RR_Header{Name: q.Name, Rrtype: dns.TypeTXT, Class: dns.ClassINET, Ttl: 300},
				Txt: []string{txt},
			})
		}
		_ = w.WriteMsg(m)
	})

	started := make(chan struct{})
	server := &dns.Server{PacketConn: pc, Handler: mux, NotifyStartedFunc: func() { close(started) }}
	go func() { _ = server.ActivateAndServe() }()
	t.Cleanup(func() { _ = server.Shutdown() })

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("dns server did not start")
	}
	return pc.LocalAddr().String()
}

func TestDNSLookup(t *testing.T) {
	addr := startTXTServer(t, map[string][]string{
		"example.com.":        {"v=spf1 -all", "google-site-verification=abc"},
		"_dmarc.example.com.": {"v=DMARC1; p=reject"},
		"empty.example.com.":  {},
	})
	r := New(DNSLookup(addr, time.Second))
	ctx := context.Background()

	assert.Equal(t, "v=spf1 -all\ngoogle-site-verification=abc", r.TXT(ctx, "example.com", ""))
	assert.Equal(t, "v=DMARC1; p=reject", r.TXT(ctx, "example.com", "_dmarc"))
	assert.Equal(t, model.NotFound, r.TXT(ctx, "empty.example.com", ""))

	failed := r.TXT(ctx, "example.com", "default._domainkey")
	assert.Contains(t, failed, "查詢錯誤 default._domainkey.example.com: ")
	assert.Contains(t, failed, "NXDOMAIN")
}

func TestDNSLookupHonoursTimeout(t *testing.T) {
	// Bound but never read, so queries go unanswered.
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = pc.Close() })

	start := time.Now()
	_, err = DNSLookup(pc.LocalAddr().String(), 150*time.Millisecond)(context.Background(), "example.com")
	assert.ErrorIs(t, err, ErrLookupFailed)
	assert.Less(t, time.Since(start), time.Second)
}
