package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", NewDefaultConfig(), false},
		{"json debug", Config{Level: "debug", Format: FormatJSON}, false},
		{"empty level means info", Config{Format: FormatJSON}, false},
		{"bad level", Config{Level: "loud", Format: FormatJSON}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLevelFromString(t *testing.T) {
	l, err := LevelFromString("error")
	require.NoError(t, err)
	assert.Equal(t, zapcore.ErrorLevel, l)

	l, err = LevelFromString("")
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, l)
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "info", Format: FormatJSON}, &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("loaded", zap.String("transmission", "wrist"))
	require.NoError(t, log.Sync())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "loaded", entry["msg"])
	assert.Equal(t, "wrist", entry["transmission"])
	assert.Contains(t, entry, "ts")
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(Config{Level: "info", Format: "yaml"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestTestLogger(t *testing.T) {
	log := NewTestLogger()
	log.Warn("transmission rejected", zap.String("transmission", "elbow"))

	log.AssertLogged(t, zapcore.WarnLevel, "rejected")
	log.AssertNotLogged(t, zapcore.ErrorLevel, "rejected")
	log.AssertField(t, "rejected", "transmission", "elbow")
	assert.Len(t, log.All(), 1)
	assert.Equal(t, 1, log.FilterMessage("transmission").Len())
}
