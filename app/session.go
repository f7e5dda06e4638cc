package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/extremtechniker/mailtxt/logger"
	"github.com/extremtechniker/mailtxt/model"
	"github.com/extremtechniker/mailtxt/report"
)

const Prompt = "請輸入要查詢的 Domain: "

// ErrNoInput is returned when input ends before a domain produced results.
var ErrNoInput = errors.New("input closed before any records were found")

// Reporter runs the three mail authentication lookups for a domain.
type Reporter interface {
	Report(ctx context.Context, domain string) model.Report
}

type Persister interface {
	Persist(ctx context.Context, r model.Report) error
}

// Session is one interactive query run.
type Session struct {
	Resolver  Reporter
	Persister Persister
	// Target names where results are saved in the confirmation message.
	Target string
	In     io.Reader
	Out    io.Writer
}

// Run prompts until a domain yields at least one TXT result, prints and
// persists that report, then returns. A failed save ends the run with an
// error, and cancelling ctx stops it even while waiting for input.
func (s *Session) Run(ctx context.Context) error {
	lines := scanLines(ctx, s.In)

	var rep model.Report
	for found := false; !found; {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(s.Out, "\n%s", Prompt)

		var l line
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.Out)
			return ctx.Err()
		case l = <-lines:
		}
		if l.err != nil {
			fmt.Fprintln(s.Out)
			return l.err
		}

		domain := strings.TrimSpace(l.text)
		if domain == "" {
			fmt.Fprintln(s.Out, "Domain 不能為空，請重新輸入")
			continue
		}

		logger.Logger.Debugf("querying mail txt records for %s", domain)
		rep = s.Resolver.Report(ctx, domain)
		if err := ctx.Err(); err != nil {
			return err
		}
		if found = rep.Found(); !found {
			fmt.Fprintln(s.Out, "查無相關記錄，請重新輸入一個有效的 Domain")
			fmt.Fprintln(s.Out)
		}
	}

	if err := report.Print(s.Out, rep); err != nil {
		return fmt.Errorf("print report: %w", err)
	}
	if err := s.Persister.Persist(ctx, rep); err != nil {
		return fmt.Errorf("save report for %s: %w", rep.Domain, err)
	}
	fmt.Fprintf(s.Out, "查詢結果已保存到 %s\n", s.Target)
	logger.Logger.Infof("saved records for %s", rep.Domain)
	return nil
}

type line struct {
	text string
	err  error
}

// scanLines feeds r line by line into the returned channel. The last value
// carries ErrNoInput or the read error. A blocked read outlives ctx but
// its result is dropped.
func scanLines(ctx context.Context, r io.Reader) <-chan line {
	ch := make(chan line)
	send := func(l line) bool {
		select {
		case ch <- l:
			return true
		case <-ctx.Done():
			return false
		}
	}

	go func() {
		in := bufio.NewScanner(r)
		for in.Scan() {
			if !send(line{text: in.Text()}) {
				return
			}
		}
		err := ErrNoInput
		if serr := in.Err(); serr != nil {
			err = fmt.Errorf("read domain: %w", serr)
		}
		send(line{err: err})
	}()
	return ch
}
