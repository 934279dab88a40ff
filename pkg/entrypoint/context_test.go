package entrypoint

import (
	"context"
	"testing"

	"github.com/nmk-dotfiles/nmk/pkg/clipboard"
	"github.com/nmk-dotfiles/nmk/pkg/errors"
	"github.com/nmk-dotfiles/nmk/pkg/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingProber records how often it was asked
type countingProber struct {
	calls  int
	answer bool
}

func (p *countingProber) Available(context.Context) bool {
	p.calls++
	return p.answer
}

func TestMakeContext(t *testing.T) {
	t.Run("linux with tmux dir and clipboard", func(t *testing.T) {
		h := newFakeHost(t)
		h.mkdir(t, testHome+"/tmux")
		h.deps.Prober = clipboard.Static(true)

		c, err := MakeContext(context.Background(), h.deps, &Options{DetachOnDestroy: true}, h.home(), true)
		require.NoError(t, err)

		assert.True(t, c.Support256Color)
		assert.True(t, c.DetachOnDestroy)
		assert.Equal(t, "/usr/bin/zsh", c.DefaultShell)
		assert.Equal(t, "screen-256color", c.DefaultTerm)
		assert.Equal(t, testHome+"/tmux/.tmux_history", c.HistoryFile)
		assert.Equal(t, platform.Linux, c.Platform)
		assert.True(t, c.ClipboardAvailable)
	})

	t.Run("no tmux dir leaves history unset", func(t *testing.T) {
		h := newFakeHost(t)

		c, err := MakeContext(context.Background(), h.deps, &Options{}, h.home(), false)
		require.NoError(t, err)
		assert.Empty(t, c.HistoryFile)
		assert.Equal(t, "screen", c.DefaultTerm)
		assert.False(t, c.ClipboardAvailable)
	})

	t.Run("macOS does not probe", func(t *testing.T) {
		h := newFakeHost(t)
		prober := &countingProber{answer: true}
		h.deps.Prober = prober
		h.deps.Platform = platform.MacOS

		c, err := MakeContext(context.Background(), h.deps, &Options{}, h.home(), false)
		require.NoError(t, err)
		assert.Equal(t, 0, prober.calls)
		assert.False(t, c.ClipboardAvailable)
	})

	t.Run("zsh missing", func(t *testing.T) {
		h := newFakeHost(t)
		delete(h.bins, "zsh")

		_, err := MakeContext(context.Background(), h.deps, &Options{}, h.home(), false)
		assert.True(t, errors.IsErrorCode(err, errors.ErrZshNotFound))
	})
}

func TestSupport256Color(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		env    map[string]string
		cgroup string
		want   bool
	}{
		{"forced", Options{Force256Color: true}, nil, "", true},
		{"xterm-256color", Options{}, map[string]string{EnvTerm: "xterm-256color"}, "", true},
		{"gnome colorterm", Options{}, map[string]string{EnvTerm: "xterm", EnvColorterm: "gnome-terminal"}, "", true},
		{"plain xterm", Options{}, map[string]string{EnvTerm: "xterm"}, "", false},
		{"docker", Options{}, map[string]string{EnvTerm: "xterm"}, "12:cpu:/docker/abc\n", true},
		{"host cgroup", Options{}, map[string]string{EnvTerm: "linux"}, "0::/init.scope\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newFakeHost(t)
			for k, v := range tt.env {
				h.env[k] = v
			}
			if tt.cgroup != "" {
				h.writeFile(t, "/proc/1/cgroup", tt.cgroup)
			}
			assert.Equal(t, tt.want, Support256Color(h.deps, &tt.opts))
		})
	}
}
