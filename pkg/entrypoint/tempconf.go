package entrypoint

import (
	"path/filepath"

	"github.com/nmk-dotfiles/nmk/pkg/errors"
	"github.com/nmk-dotfiles/nmk/pkg/logging"
	"github.com/spf13/afero"
)

// WriteTempConfig writes data to a new file in the temp directory and removes
// configuration files left by earlier runs
func WriteTempConfig(d *Deps, data []byte) (string, error) {
	pattern := d.Config.Tmux.TempPrefix + "*" + d.Config.Tmux.TempSuffix

	f, err := afero.TempFile(d.Fs, d.TempDir, pattern)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileCreate, "failed to create temporary tmux configuration")
	}
	name := f.Name()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", name)
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to close %s", name)
	}

	CleanStaleConfigs(d, name)
	return name, nil
}

// CleanStaleConfigs removes temporary configuration files other than keep and
// returns how many were removed
func CleanStaleConfigs(d *Deps, keep string) int {
	logger := logging.GetLogger("entrypoint")
	pattern := filepath.Join(d.TempDir, d.Config.Tmux.TempPrefix+"*"+d.Config.Tmux.TempSuffix)

	matches, err := afero.Glob(d.Fs, pattern)
	if err != nil {
		logger.Debug().Err(err).Str("pattern", pattern).Msg("Bad temporary configuration pattern")
		return 0
	}

	removed := 0
	for _, path := range matches {
		if path == keep {
			continue
		}
		if err := d.Fs.Remove(path); err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("Failed to remove stale configuration")
			continue
		}
		removed++
	}
	return removed
}
