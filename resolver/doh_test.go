package resolver

import (
	"testing"

	dohdns "github.com/likexian/doh/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoHAnswerText(t *testing.T) {
	tests := []struct {
		name    string
		resp    *dohdns.Response
		want    []string
		wantRaw string
		wantErr bool
	}{
		{
			name: "quoted multi-string txt",
			resp: &dohdns.Response{Answer: []dohdns.Answer{
				{Name: "default._domainkey.example.com.", Type: 16, TTL: 300, Data: `"v=DKIM1; k=rsa; " "p=MIGf"`},
			}},
			want: []string{"v=DKIM1; k=rsa; ", "p=MIGf"},
		},
		{
			name: "cname answer skipped",
			resp: &dohdns.Response{Answer: []dohdns.Answer{
				{Name: "_dmarc.example.com.", Type: 5, TTL: 300, Data: "_dmarc.example.net."},
				{Name: "_dmarc.example.net.", Type: 16, TTL: 300, Data: `"v=DMARC1; p=reject"`},
			}},
			want:    []string{"v=DMARC1; p=reject"},
			wantRaw: "\"v=DMARC1; p=reject\"\n",
		},
		{
			name: "no answers",
			resp: &dohdns.Response{},
			want: nil,
		},
		{
			name:    "nxdomain",
			resp:    &dohdns.Response{Status: 3},
			wantErr: true,
		},
		{
			name:    "nil response",
			resp:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := dohAnswerText(tt.resp, "example.com")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrLookupFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ExtractQuoted(out))
			if tt.wantRaw != "" {
				assert.Equal(t, tt.wantRaw, out)
			}
		})
	}
}

func TestDoHAnswerTextStatusNamesQuery(t *testing.T) {
	_, err := dohAnswerText(&dohdns.Response{Status: 3}, "_dmarc.missing.invalid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "doh status 3 for _dmarc.missing.invalid")
}
