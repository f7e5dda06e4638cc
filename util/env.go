package util

import (
	"os"
	"strconv"
	"time"
)

func MustGetenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// GetenvBool reports whether key holds a truthy value ("1", "true", ...).
func GetenvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func GetenvDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func GetJwtSecret() string {
	return MustGetenv("JWT_SECRET", "1234")
}
