package config

import (
	"testing"
)

const testVar = "NOISE_TEST_VALUE"

func TestReadInt(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		def      int
		want     int
	}{
		{name: "empty returns default", envValue: "", def: 1000, want: 1000},
		{name: "plain value", envValue: "500", def: 1000, want: 500},
		{name: "zero", envValue: "0", def: 1000, want: 0},
		{name: "ceiling kept", envValue: "1000000000", def: 7, want: MaxValue},
		{name: "above ceiling clamps", envValue: "2000000000", def: 7, want: MaxValue},
		{name: "overflowing digits clamp", envValue: "99999999999999999999999", def: 7, want: MaxValue},
		{name: "negative clamps to zero", envValue: "-5", def: 7, want: 0},
		{name: "huge negative clamps to zero", envValue: "-99999999999999999999999", def: 7, want: 0},
		{name: "negative zero", envValue: "-0", def: 7, want: 0},
		{name: "explicit plus", envValue: "+42", def: 7, want: 42},
		{name: "leading whitespace", envValue: " \t 42", def: 7, want: 42},
		{name: "trailing garbage ignored", envValue: "1000x", def: 7, want: 1000},
		{name: "hex prefix reads leading zero", envValue: "0x10", def: 7, want: 0},
		{name: "no digits returns default", envValue: "abc", def: 7, want: 7},
		{name: "sign only returns default", envValue: "-", def: 7, want: 7},
		{name: "whitespace only returns default", envValue: "   ", def: 7, want: 7},
		{name: "digits after garbage returns default", envValue: "x1000", def: 7, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(testVar, tt.envValue)

			if got := ReadInt(testVar, tt.def); got != tt.want {
				t.Errorf("ReadInt(%q) = %v, want %v", tt.envValue, got, tt.want)
			}
		})
	}
}

func TestReadInt_Unset(t *testing.T) {
	if got := ReadInt("NOISE_TEST_NEVER_SET", 1000); got != 1000 {
		t.Errorf("ReadInt() = %v, want %v", got, 1000)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in   int64
		want int
	}{
		{in: -1, want: 0},
		{in: 0, want: 0},
		{in: 1, want: 1},
		{in: MaxValue, want: MaxValue},
		{in: MaxValue + 1, want: MaxValue},
	}

	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		want     bool
	}{
		{name: "unset defaults to enabled", envValue: "", want: true},
		{name: "zero disables", envValue: "0", want: false},
		{name: "one enables", envValue: "1", want: true},
		{name: "any positive enables", envValue: "7", want: true},
		{name: "negative clamps to disabled", envValue: "-1", want: false},
		{name: "garbage falls back to enabled", envValue: "off", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvEnable, tt.envValue)

			if got := Enabled(); got != tt.want {
				t.Errorf("Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRateHz(t *testing.T) {
	tests := []struct {
		envValue string
		want     int
	}{
		{envValue: "", want: defaultRateHz},
		{envValue: "0", want: 0},
		{envValue: "500", want: 500},
		{envValue: "2000000000", want: MaxValue},
	}

	for _, tt := range tests {
		t.Run(tt.envValue, func(t *testing.T) {
			t.Setenv(EnvRateHz, tt.envValue)

			if got := RateHz(); got != tt.want {
				t.Errorf("RateHz() = %v, want %v", got, tt.want)
			}
		})
	}
}
