package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantLevel zapcore.Level
		expect    func(*testing.T, string)
	}{
		{
			name:      "console default",
			cfg:       Config{},
			wantLevel: zapcore.InfoLevel,
			expect: func(t *testing.T, out string) {
				assert := assert.New(t)
				assert.Contains(out, "INFO")
				assert.Contains(out, "fit done")
				assert.NotContains(out, "debug detail")
			},
		},
		{
			name:      "json verbose",
			cfg:       Config{Verbose: true, Format: "JSON"},
			wantLevel: zapcore.DebugLevel,
			expect: func(t *testing.T, out string) {
				assert := assert.New(t)
				lines := strings.Split(strings.TrimSpace(out), "\n")
				assert.Len(lines, 2)

				var entry map[string]any
				assert.NoError(json.Unmarshal([]byte(lines[1]), &entry))
				assert.Equal("info", entry["level"])
				assert.Equal("fit done", entry["msg"])
				assert.Equal("Linear", entry["model"])
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			tc.cfg.Output = &buf

			log, level, err := New(tc.cfg)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantLevel, level.Level())

			log.Debug("debug detail")
			log.Info("fit done", zap.String("model", "Linear"))
			tc.expect(t, buf.String())
		})
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	_, _, err := New(Config{Format: "xml"})
	assert.ErrorContains(t, err, "xml")
}
