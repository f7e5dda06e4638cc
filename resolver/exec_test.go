package resolver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript installs a fake lookup utility that receives "-type=txt <name>".
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported")
	}
	path := filepath.Join(t.TempDir(), "fake-nslookup")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestExecLookup(t *testing.T) {
	script := writeScript(t, `echo "$2	text = \"v=spf1 include:$2 -all\""`+"\n")

	out, err := ExecLookup(script)(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"v=spf1 include:example.com -all"}, ExtractQuoted(out))
}

func TestExecLookupFailure(t *testing.T) {
	script := writeScript(t, "echo \"** server can't find $2: NXDOMAIN\"\nexit 1\n")

	r := New(ExecLookup(script))
	got := r.TXT(context.Background(), "missing.invalid", "_dmarc")
	assert.Contains(t, got, "查詢錯誤 _dmarc.missing.invalid: ")
	assert.Contains(t, got, "exit status 1")

	_, err := ExecLookup(script)(context.Background(), "missing.invalid")
	assert.True(t, errors.Is(err, ErrLookupFailed))
}

func TestExecLookupMissingBinary(t *testing.T) {
	_, err := ExecLookup(filepath.Join(t.TempDir(), "does-not-exist"))(context.Background(), "example.com")
	assert.ErrorIs(t, err, ErrLookupFailed)
}
