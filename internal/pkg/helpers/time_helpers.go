package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns default duration on error.
// Besides Go duration syntax it accepts a day suffix ("7d").
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	if days, ok := parseDays(durationStr); ok {
		return days
	}
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		// Global logger: config is parsed before the logger is configured.
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

func parseDays(s string) (time.Duration, bool) {
	if len(s) < 2 || s[len(s)-1] != 'd' {
		return 0, false
	}
	n := 0
	for _, r := range s[:len(s)-1] {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return time.Duration(n) * 24 * time.Hour, true
}
