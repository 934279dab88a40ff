package entrypoint

import (
	"context"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/nmk-dotfiles/nmk/pkg/clipboard"
	"github.com/nmk-dotfiles/nmk/pkg/config"
	"github.com/nmk-dotfiles/nmk/pkg/paths"
	"github.com/nmk-dotfiles/nmk/pkg/platform"
	"github.com/spf13/afero"
)

// CommandRunner runs a command and returns its standard output
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Execer replaces the current process
type Execer func(argv0 string, argv []string, envv []string) error

// Deps is everything a run touches outside the process
type Deps struct {
	Fs       afero.Fs
	Env      Env
	LookPath func(file string) (string, error)
	Command  CommandRunner
	Exec     Execer
	Prober   clipboard.Prober
	Platform platform.Type
	Config   *config.Config
	Home     func() (paths.NmkHome, error)
	Stdout   io.Writer
	TempDir  string
	Now      func() time.Time
	// BuildTime is when the binary was built; zero disables the update notice
	BuildTime time.Time
}

// DefaultDeps returns dependencies bound to the real host
func DefaultDeps(cfg *config.Config) *Deps {
	fs := afero.NewOsFs()
	return &Deps{
		Fs:       fs,
		Env:      OSEnv{},
		LookPath: exec.LookPath,
		Command:  RunCommand,
		Exec:     syscall.Exec,
		Prober:   clipboard.NewXclipProber(cfg.Clipboard.Timeout),
		Platform: platform.Detect(fs),
		Config:   cfg,
		Home:     paths.Locate,
		Stdout:   os.Stdout,
		TempDir:  os.TempDir(),
		Now:      time.Now,
	}
}

// RunCommand runs name with args and returns its standard output
func RunCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}
