package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestGetChainsLevelMethods(t *testing.T) {
	// Level methods hang off *zerolog.Logger, so Get must hand back
	// something they can be called on without a local variable.
	Get().Debug().Msg("chained")

	log := With("test")
	log.Debug().Msg("component")
}

func TestInitSetsGlobalLevel(t *testing.T) {
	Init("debug", true)
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("global level = %s, want debug", zerolog.GlobalLevel())
	}
	Init("info", false)
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("global level = %s, want info", zerolog.GlobalLevel())
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"WARN", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
