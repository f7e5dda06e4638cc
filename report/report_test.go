package report

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extremtechniker/mailtxt/model"
)

func TestPrint(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	err := Print(&buf, model.Report{
		Domain: "example.com",
		SPF:    "v=spf1 -all",
		DMARC:  "v=DMARC1; p=none",
		DKIM:   model.NotFound,
	})
	require.NoError(t, err)

	want := "\n" +
		"--------------------------- 查詢結果 ---------------------------\n" +
		"Domain: example.com\n" +
		"\nSPF 設定:\nv=spf1 -all\n" +
		"\nDMARC 設定:\nv=DMARC1; p=none\n" +
		"\nDKIM 設定:\n沒有找到 TXT 紀錄。\n" +
		"\n----------------------------------------------------------------\n"
	assert.Equal(t, want, buf.String())
}
