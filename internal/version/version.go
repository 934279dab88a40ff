package version

import (
	"fmt"
	"time"

	"github.com/nmk-dotfiles/nmk/pkg/humantime"
)

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/nmk-dotfiles/nmk/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/nmk-dotfiles/nmk/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/nmk-dotfiles/nmk/internal/version.Date={{.Date}}
)

// BuildTime parses Date as RFC 3339; the zero time means unknown
func BuildTime() time.Time {
	t, err := time.Parse(time.RFC3339, Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Verbose describes the build the way `nmk version` prints it, for example
// "1.2.0 #abc1234 (3d 4h since last build)"
func Verbose(now time.Time) string {
	s := Version
	if Commit != "" && Commit != "unknown" {
		s += " #" + shortSHA(Commit)
	}
	if age, ok := humantime.Since(BuildTime(), now); ok && !BuildTime().IsZero() {
		s += fmt.Sprintf(" (%s since last build)", age.ToHuman(2))
	}
	return s
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
