package entrypoint

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/nmk-dotfiles/nmk/pkg/clipboard"
	"github.com/nmk-dotfiles/nmk/pkg/config"
	"github.com/nmk-dotfiles/nmk/pkg/paths"
	"github.com/nmk-dotfiles/nmk/pkg/platform"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const testHome = "/home/user/.nmk"

// execCall records one Exec invocation
type execCall struct {
	argv0 string
	argv  []string
	envv  []string
}

type fakeHost struct {
	deps     *Deps
	env      MapEnv
	bins     map[string]string
	stdout   *bytes.Buffer
	execs    []execCall
	commands [][]string
	output   []byte
	cmdErr   error
}

func newFakeHost(t *testing.T) *fakeHost {
	t.Helper()

	cfg, err := config.Default()
	require.NoError(t, err)

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/tmp", 0755))

	h := &fakeHost{
		env: MapEnv{EnvPath: "/usr/bin:/bin"},
		bins: map[string]string{
			"tmux": "/usr/bin/tmux",
			"zsh":  "/usr/bin/zsh",
			"vim":  "/usr/bin/vim",
		},
		stdout: &bytes.Buffer{},
		output: []byte("tmux 3.1b\n"),
	}
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	h.deps = &Deps{
		Fs:       fs,
		Env:      h.env,
		LookPath: h.lookPath,
		Command:  h.command,
		Exec:     h.exec,
		Prober:   clipboard.Static(false),
		Platform: platform.Linux,
		Config:   cfg,
		Home:     func() (paths.NmkHome, error) { return paths.New(testHome), nil },
		Stdout:   h.stdout,
		TempDir:  "/tmp",
		Now:      func() time.Time { return now },
	}
	return h
}

func (h *fakeHost) lookPath(file string) (string, error) {
	if p, ok := h.bins[file]; ok {
		return p, nil
	}
	return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
}

func (h *fakeHost) command(_ context.Context, name string, args ...string) ([]byte, error) {
	h.commands = append(h.commands, append([]string{name}, args...))
	return h.output, h.cmdErr
}

func (h *fakeHost) exec(argv0 string, argv []string, envv []string) error {
	h.execs = append(h.execs, execCall{argv0: argv0, argv: argv, envv: envv})
	return nil
}

func (h *fakeHost) mkdir(t *testing.T, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, h.deps.Fs.MkdirAll(d, 0755))
	}
}

func (h *fakeHost) writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(h.deps.Fs, path, []byte(content), 0644))
}

func (h *fakeHost) home() paths.NmkHome {
	return paths.New(testHome)
}

var errFake = fmt.Errorf("fake failure")
