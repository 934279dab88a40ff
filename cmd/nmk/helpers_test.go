package nmk

import (
	"bytes"
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/nmk-dotfiles/nmk/pkg/clipboard"
	"github.com/nmk-dotfiles/nmk/pkg/config"
	"github.com/nmk-dotfiles/nmk/pkg/entrypoint"
	"github.com/nmk-dotfiles/nmk/pkg/paths"
	"github.com/nmk-dotfiles/nmk/pkg/platform"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const testHome = "/home/user/.nmk"

type fakeHost struct {
	t       *testing.T
	fs      afero.Fs
	env     entrypoint.MapEnv
	stdout  *bytes.Buffer
	cfg     *config.Config
	execs   [][]string
	version string
}

// newFakeHost isolates the log file and settings lookup from the real user
// and returns a host whose tmux reports 3.1b
func newFakeHost(t *testing.T) *fakeHost {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("NMK_HOME", t.TempDir())

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/tmp", 0755))

	return &fakeHost{
		t:       t,
		fs:      fs,
		env:     entrypoint.MapEnv{entrypoint.EnvPath: "/usr/bin:/bin"},
		stdout:  &bytes.Buffer{},
		version: "tmux 3.1b\n",
	}
}

func (h *fakeHost) factory(cfg *config.Config) *entrypoint.Deps {
	h.cfg = cfg
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return &entrypoint.Deps{
		Fs:  h.fs,
		Env: h.env,
		LookPath: func(file string) (string, error) {
			switch file {
			case "tmux", "zsh", "vim":
				return "/usr/bin/" + file, nil
			}
			return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
		},
		Command: func(context.Context, string, ...string) ([]byte, error) {
			return []byte(h.version), nil
		},
		Exec: func(argv0 string, argv []string, envv []string) error {
			h.execs = append(h.execs, argv)
			return nil
		},
		Prober:   clipboard.Static(false),
		Platform: platform.Linux,
		Config:   cfg,
		Home:     func() (paths.NmkHome, error) { return paths.New(testHome), nil },
		Stdout:   h.stdout,
		TempDir:  "/tmp",
		Now:      func() time.Time { return now },
	}
}

// run executes the root command with args and returns what it printed
func (h *fakeHost) run(args ...string) (string, error) {
	h.t.Helper()
	cmd := h.rootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String() + h.stdout.String(), err
}

func (h *fakeHost) rootCmd() *cobra.Command {
	return NewRootCmdWithDeps(h.factory)
}
