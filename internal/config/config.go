package config

import (
	"os"
	"strings"
)

const (
	EnvEnable = "NOISE_ENABLE"
	EnvRateHz = "NOISE_RATE_HZ"

	defaultEnable = 1
	defaultRateHz = 1000

	// MaxValue is the ceiling every integer setting is clamped to.
	MaxValue = 1_000_000_000
)

// ReadInt returns the base-10 integer stored in the named environment
// variable. Leading whitespace and an optional sign are accepted and anything
// after the leading digits is ignored, so "1000x" reads as 1000. Unset, empty
// or digit-less values yield def. The result is clamped to [0, MaxValue].
func ReadInt(name string, def int) int {
	value := os.Getenv(name)
	if value == "" {
		return def
	}

	v, ok := parseLeadingInt(value)
	if !ok {
		return def
	}
	return Clamp(v)
}

// Clamp bounds v to [0, MaxValue].
func Clamp(v int64) int {
	if v < 0 {
		return 0
	}
	if v > MaxValue {
		return MaxValue
	}
	return int(v)
}

// Enabled reports whether the emitter should start. Any non-zero value after
// clamping enables it, so negative values disable.
func Enabled() bool {
	return ReadInt(EnvEnable, defaultEnable) != 0
}

// RateHz returns the configured call rate. Zero selects busy mode.
func RateHz() int {
	return ReadInt(EnvRateHz, defaultRateHz)
}

func parseLeadingInt(s string) (int64, bool) {
	s = strings.TrimLeft(s, " \t\n\v\f\r")

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	var v int64
	digits := 0
	for ; digits < len(s) && s[digits] >= '0' && s[digits] <= '9'; digits++ {
		// past the ceiling the exact value no longer matters, only its sign
		if v <= MaxValue {
			v = v*10 + int64(s[digits]-'0')
		}
	}
	if digits == 0 {
		return 0, false
	}

	if neg {
		v = -v
	}
	return v, true
}
