package model

import "time"

// NotFound is the result string used when a lookup yields no quoted TXT data.
const NotFound = "沒有找到 TXT 紀錄。"

// Kind names one of the three mail authentication lookups.
type Kind struct {
	Label  string // heading used in reports, e.g. "SPF"
	Prefix string // owner-name prefix prepended to the domain
}

var (
	SPF   = Kind{Label: "SPF", Prefix: ""}
	DMARC = Kind{Label: "DMARC", Prefix: "_dmarc"}
	DKIM  = Kind{Label: "DKIM", Prefix: "default._domainkey"}
)

// Kinds lists the lookups in the order they are queried and reported.
var Kinds = []Kind{SPF, DMARC, DKIM}

type Report struct {
	Domain    string    `json:"domain"`
	SPF       string    `json:"spf"`
	DMARC     string    `json:"dmarc"`
	DKIM      string    `json:"dkim"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Found reports whether at least one of the lookups returned something
// other than NotFound. Error strings count as results.
func (r Report) Found() bool {
	return r.SPF != NotFound || r.DMARC != NotFound || r.DKIM != NotFound
}

// Result returns the stored result for k.
func (r Report) Result(k Kind) string {
	switch k {
	case SPF:
		return r.SPF
	case DMARC:
		return r.DMARC
	case DKIM:
		return r.DKIM
	}
	return ""
}
