package entrypoint

import (
	"context"

	"github.com/nmk-dotfiles/nmk/pkg/errors"
	"github.com/nmk-dotfiles/nmk/pkg/logging"
	"github.com/nmk-dotfiles/nmk/pkg/tmux"
)

// TmuxBin is the tmux executable name
const TmuxBin = "tmux"

// FindVersion returns the tmux version from NMK_TMUX_VERSION when it is set,
// otherwise from `tmux -V`
func FindVersion(ctx context.Context, d *Deps) (tmux.Version, error) {
	logger := logging.GetLogger("entrypoint")

	if s := d.Env.Getenv(EnvNmkTmuxVersion); s != "" {
		logger.Debug().Str("version", s).Msg("Using tmux version from environment")
		return tmux.ParseVersionNumber(s)
	}

	bin, err := d.LookPath(TmuxBin)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrTmuxNotFound, "tmux not found")
	}

	out, err := d.Command(ctx, bin, "-V")
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrTmuxVersionCommand, "%s -V failed", bin)
	}
	logger.Debug().Str("bin", bin).Str("output", string(out)).Msg("tmux version output")

	return tmux.ParseVersionOutput(string(out))
}
