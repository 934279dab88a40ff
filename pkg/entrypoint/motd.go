package entrypoint

import (
	"fmt"
	"io"
	"time"

	"github.com/nmk-dotfiles/nmk/pkg/errors"
	"github.com/nmk-dotfiles/nmk/pkg/humantime"
	"github.com/spf13/afero"
)

// DisplayMOTD copies each existing message of the day file to w
func DisplayMOTD(w io.Writer, fs afero.Fs, files []string) error {
	for _, path := range files {
		f, err := fs.Open(path)
		if err != nil {
			continue
		}
		_, err = io.Copy(w, f)
		_ = f.Close()
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to print %s", path)
		}
	}
	return nil
}

// SinceBuildNotice returns an update suggestion when the build is older than
// threshold, or "" otherwise
func SinceBuildNotice(built, now time.Time, threshold time.Duration) string {
	if built.IsZero() {
		return ""
	}
	age, ok := humantime.Since(built, now)
	if !ok || now.Sub(built) <= threshold {
		return ""
	}
	return fmt.Sprintf("nmk: It's been %s since build.", age.ToHuman(2))
}
