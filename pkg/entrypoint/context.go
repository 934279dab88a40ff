package entrypoint

import (
	"context"

	"github.com/nmk-dotfiles/nmk/pkg/container"
	"github.com/nmk-dotfiles/nmk/pkg/errors"
	"github.com/nmk-dotfiles/nmk/pkg/paths"
	"github.com/nmk-dotfiles/nmk/pkg/terminal"
	"github.com/nmk-dotfiles/nmk/pkg/tmux"
)

// ZshBin is the zsh executable name
const ZshBin = "zsh"

// Support256Color decides colour support from the flag, the terminal
// variables and container detection
func Support256Color(d *Deps, opts *Options) bool {
	if opts.Force256Color {
		return true
	}
	detector := terminal.NewDetector(d.Config.Terminal.Terms, d.Config.Terminal.Colorterms)
	return detector.Support256Color(d.Env.Getenv, container.IsContainerized(d.Fs, d.Platform))
}

// MakeContext resolves everything the renderer needs from the host
func MakeContext(ctx context.Context, d *Deps, opts *Options, home paths.NmkHome, support256 bool) (*tmux.Context, error) {
	shell, err := d.LookPath(ZshBin)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrZshNotFound, "zsh not found")
	}

	c := &tmux.Context{
		Support256Color: support256,
		DetachOnDestroy: opts.DetachOnDestroy,
		DefaultShell:    shell,
		DefaultTerm:     terminal.DefaultTerm(support256),
		Platform:        d.Platform,
	}

	if paths.IsDir(d.Fs, home.Tmux()) {
		c.HistoryFile = home.TmuxHistory()
	}

	// pbcopy is always present on macOS
	if !d.Platform.IsMac() && d.Prober != nil {
		c.ClipboardAvailable = d.Prober.Available(ctx)
	}

	return c, nil
}
