package cmd

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/ironsheep/cardprep/internal/config"
)

func TestDetermineLogLevel_Precedence(t *testing.T) {
	tests := []struct {
		name      string
		flagLevel string
		cfg       config.Config
		want      string
	}{
		{"default", "", config.Config{}, "info"},
		{"env level", "", config.Config{LogLevel: "debug"}, "debug"},
		{"verbose beats env", "", config.Config{Verbose: true, LogLevel: "error"}, "debug"},
		{"quiet", "", config.Config{Quiet: true}, "warn"},
		{"both flags uses quiet", "", config.Config{Verbose: true, Quiet: true}, "warn"},
		{"explicit flag wins", "error", config.Config{Verbose: true}, "error"},
		{"invalid flag falls back", "loud", config.Config{}, "info"},
		{"invalid env falls back", "", config.Config{LogLevel: "loud"}, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			assert.Equal(t, tt.want, determineLogLevel(tt.flagLevel, &cfg))
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, parseLevel("trace"))
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("info"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("anything else"))
}

func TestNewLogger_Formats(t *testing.T) {
	console := newLogger("", &config.Config{LogFormat: "console"})
	assert.Equal(t, zerolog.InfoLevel, console.GetLevel())

	json := newLogger("debug", &config.Config{LogFormat: "json"})
	assert.Equal(t, zerolog.DebugLevel, json.GetLevel())
}
