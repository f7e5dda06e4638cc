package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/extremtechniker/mailtxt/logger"
	"github.com/extremtechniker/mailtxt/model"
)

const DefaultFile = "dns_records.txt"

var separator = strings.Repeat("-", 80)

// File appends reports to a plain text log.
type File struct {
	Path string
}

func NewFile(path string) *File {
	if path == "" {
		path = DefaultFile
	}
	return &File{Path: path}
}

// Format renders r as one log block, terminated by a separator line.
func Format(r model.Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Domain: %s\n\n", r.Domain)
	fmt.Fprintf(&sb, "SPF 設定:\n%s\n\n", r.SPF)
	fmt.Fprintf(&sb, "DMARC 設定:\n%s\n\n", r.DMARC)
	fmt.Fprintf(&sb, "DKIM 設定:\n%s\n", r.DKIM)
	sb.WriteString(separator + "\n")
	return sb.String()
}

// Persist appends r to the log, creating the file if needed.
func (f *File) Persist(_ context.Context, r model.Report) (err error) {
	fh, err := os.OpenFile(f.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", f.Path, err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close %s: %w", f.Path, cerr))
		}
	}()

	if _, err := fh.WriteString(Format(r)); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}
	logger.Logger.Debugf("appended %s to %s", r.Domain, f.Path)
	return nil
}

func (f *File) String() string {
	return f.Path
}
