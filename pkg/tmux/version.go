package tmux

import (
	"strings"

	"github.com/nmk-dotfiles/nmk/pkg/errors"
)

// Version is a supported tmux release.
// Constants must stay in release order; insert new releases at the right position.
type Version int

const (
	V26 Version = iota
	V27
	V28
	V29
	V29a
	V30
	V30a
	V31
	V31a
	V31b
	V31c
)

var versionNames = [...]string{
	V26:  "2.6",
	V27:  "2.7",
	V28:  "2.8",
	V29:  "2.9",
	V29a: "2.9a",
	V30:  "3.0",
	V30a: "3.0a",
	V31:  "3.1",
	V31a: "3.1a",
	V31b: "3.1b",
	V31c: "3.1c",
}

// Versions returns every supported version, oldest first
func Versions() []Version {
	vs := make([]Version, len(versionNames))
	for i := range versionNames {
		vs[i] = Version(i)
	}
	return vs
}

// String returns the version number as printed by tmux -V
func (v Version) String() string {
	if v < 0 || int(v) >= len(versionNames) {
		return "unknown"
	}
	return versionNames[v]
}

// ParseVersionOutput parses the output of `tmux -V`, e.g. "tmux 3.1b\n"
func ParseVersionOutput(raw string) (Version, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(raw), isASCIISpace)
	if len(fields) < 2 {
		return 0, errors.Newf(errors.ErrTmuxVersionBadOutput, "bad tmux version output: %q", raw).
			WithDetail("input", raw)
	}
	return ParseVersionNumber(fields[1])
}

// ParseVersionNumber matches s exactly against the supported version table
func ParseVersionNumber(s string) (Version, error) {
	for i, name := range versionNames {
		if name == s {
			return Version(i), nil
		}
	}
	return 0, errors.Newf(errors.ErrTmuxVersionUnsupported, "unsupported tmux version: %s", s).
		WithDetail("input", s)
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
