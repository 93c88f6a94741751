package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bbstatus/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger returns a logger writing to a buffer with colours disabled.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Golden(t *testing.T) {
	tests := []struct {
		name string
		log  func(*logger.Logger)
	}{
		{
			name: "info_basic",
			log:  func(l *logger.Logger) { l.Info("skipping status report for manual trigger") },
		},
		{
			name: "warn_basic",
			log:  func(l *logger.Logger) { l.Warn("commit hash taken from HEAD") },
		},
		{
			name: "error_simple",
			log:  func(l *logger.Logger) { l.Error(os.ErrPermission) },
		},
		{
			name: "error_chain",
			log: func(l *logger.Logger) {
				l.Error(zerr.Wrap(errors.New("dial tcp: connection refused"), "status request transfer failed"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Warn("careful")
	lg.Error(errors.New("boom"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var warn map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &warn))
	assert.Equal(t, "WARN", warn["level"])
	assert.Equal(t, "careful", warn["msg"])

	var failed map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &failed))
	assert.Equal(t, "ERROR", failed["level"])
	assert.Equal(t, "boom", failed["error"])
}

func TestLogger_SetOutputKeepsJSONMode(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	var buf bytes.Buffer
	lg.SetOutput(&buf)
	lg.Info("hello")

	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestFormatError(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		assert.Equal(t, "boom", logger.FormatError(errors.New("boom")))
	})

	t.Run("multiline message is indented", func(t *testing.T) {
		got := logger.FormatError(errors.New("yaml: unmarshal errors:\n  line 3: bad"))
		assert.Equal(t, "yaml: unmarshal errors:\n    line 3: bad", got)
	})

	t.Run("zerr chain", func(t *testing.T) {
		err := zerr.Wrap(errors.New("root cause"), "outer")
		assert.Equal(t, []string{"outer", "root cause"}, logger.ErrorChain(err))
		assert.Equal(t, "outer\n\n  Caused by:\n    → root cause", logger.FormatError(err))
	})
}

func TestFormatError_Metadata(t *testing.T) {
	err := zerr.With(zerr.With(zerr.New("invalid build status"), "value", "2"), "field", "BITRISE_BUILD_STATUS")
	assert.Equal(t, "invalid build status (field=BITRISE_BUILD_STATUS, value=2)", logger.FormatError(err))
}
