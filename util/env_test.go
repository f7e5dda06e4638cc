package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMustGetenv(t *testing.T) {
	t.Setenv("MAILTXT_TEST_KEY", "")
	assert.Equal(t, "fallback", MustGetenv("MAILTXT_TEST_KEY", "fallback"))

	t.Setenv("MAILTXT_TEST_KEY", "value")
	assert.Equal(t, "value", MustGetenv("MAILTXT_TEST_KEY", "fallback"))
}

func TestGetenvBool(t *testing.T) {
	t.Setenv("MAILTXT_TEST_BOOL", "true")
	assert.True(t, GetenvBool("MAILTXT_TEST_BOOL", false))

	t.Setenv("MAILTXT_TEST_BOOL", "nope")
	assert.False(t, GetenvBool("MAILTXT_TEST_BOOL", false))
}

func TestGetenvDuration(t *testing.T) {
	t.Setenv("MAILTXT_TEST_TTL", "30m")
	assert.Equal(t, 30*time.Minute, GetenvDuration("MAILTXT_TEST_TTL", time.Hour))

	t.Setenv("MAILTXT_TEST_TTL", "-1s")
	assert.Equal(t, time.Hour, GetenvDuration("MAILTXT_TEST_TTL", time.Hour))
}
