// Package platform identifies the host operating system and, on Linux,
// the distributions whose login scripts interfere with nmk.
//
// Detection happens once at startup; the result is passed down explicitly
// instead of being cached in package state.
package platform

import (
	"runtime"

	"github.com/spf13/afero"
)

// Type is the detected host platform
type Type int

const (
	Unknown Type = iota
	MacOS
	Linux
	Arch
	Alpine
)

const (
	alpineRelease = "/etc/alpine-release"
	archRelease   = "/etc/arch-release"
)

// String returns a lower-case platform name
func (t Type) String() string {
	switch t {
	case MacOS:
		return "macos"
	case Linux:
		return "linux"
	case Arch:
		return "arch"
	case Alpine:
		return "alpine"
	default:
		return "unknown"
	}
}

// IsMac reports whether the platform is macOS
func (t Type) IsMac() bool {
	return t == MacOS
}

// IsLinux reports whether the platform is any Linux distribution
func (t Type) IsLinux() bool {
	return t == Linux || t == Arch || t == Alpine
}

// Detect identifies the running platform
func Detect(fs afero.Fs) Type {
	return detect(fs, runtime.GOOS)
}

func detect(fs afero.Fs, goos string) Type {
	switch goos {
	case "darwin":
		return MacOS
	case "linux":
		if exists(fs, alpineRelease) {
			return Alpine
		}
		if exists(fs, archRelease) {
			return Arch
		}
		return Linux
	default:
		return Unknown
	}
}

func exists(fs afero.Fs, path string) bool {
	ok, err := afero.Exists(fs, path)
	return err == nil && ok
}
