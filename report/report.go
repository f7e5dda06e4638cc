package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/extremtechniker/mailtxt/model"
)

var (
	bold  = color.New(color.Bold, color.FgWhite).SprintFunc()
	label = color.New(color.Bold, color.FgBlue).SprintFunc()
	red   = color.New(color.Bold, color.FgRed).SprintFunc()
)

const (
	header = "--------------------------- 查詢結果 ---------------------------"
	footer = "----------------------------------------------------------------"
)

// Print writes the console summary for r to w.
func Print(w io.Writer, r model.Report) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s\n", header)
	fmt.Fprintf(&sb, "Domain: %s\n", bold(r.Domain))
	for _, k := range model.Kinds {
		fmt.Fprintf(&sb, "\n%s\n%s\n", label(k.Label+" 設定:"), result(r.Result(k)))
	}
	fmt.Fprintf(&sb, "\n%s\n", footer)

	_, err := io.WriteString(w, sb.String())
	return err
}

func result(s string) string {
	if s == model.NotFound {
		return red(s)
	}
	return s
}
