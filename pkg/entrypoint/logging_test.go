package entrypoint

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/nmk-dotfiles/nmk/pkg/platform"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureDebugLog routes the global logger into a buffer for the test
func captureDebugLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)
	return &buf
}

func TestRunDebugLogging(t *testing.T) {
	buf := captureDebugLog(t)

	h := newFakeHost(t)
	h.deps.Platform = platform.Alpine
	require.NoError(t, Run(context.Background(), &Options{Render: true}, h.deps))

	out := buf.String()
	assert.Contains(t, out, `"component":"entrypoint"`)
	assert.Contains(t, out, `"message":"export"`)
	assert.Contains(t, out, `"key":"NMK_INITIALIZED"`)
	assert.Contains(t, out, `"message":"Ignoring zsh global rcs"`)
	assert.Contains(t, out, `"message":"Rendered tmux configuration"`)
}

func TestPrintUsageTimeLogsWithoutFlag(t *testing.T) {
	buf := captureDebugLog(t)

	h := newFakeHost(t)
	opts := &Options{StartTime: h.deps.Now().Add(-1500 * time.Microsecond)}
	PrintUsageTime(h.deps, opts)

	assert.Empty(t, h.stdout.String())
	assert.Contains(t, buf.String(), `"message":"Usage time"`)
	assert.Contains(t, buf.String(), `"component":"entrypoint"`)
}
