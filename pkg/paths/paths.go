package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/nmk-dotfiles/nmk/pkg/errors"
	"github.com/spf13/afero"
)

// Environment variable names
const (
	// EnvNmkHome overrides the dotfiles home
	EnvNmkHome = "NMK_HOME"

	// EnvStateHome is the XDG state directory variable
	EnvStateHome = "XDG_STATE_HOME"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Directory and file names inside the dotfiles home
const (
	DefaultHomeDir = ".nmk"
	BinDir         = "bin"
	VendorDir      = "vendor"
	ZshDir         = "zsh"
	VimDir         = "vim"
	TmuxDir        = "tmux"
	TmuxHistory    = ".tmux_history"
	StateDirName   = "nmk"
)

// NmkHome is the root of the dotfiles tree
type NmkHome struct {
	root string
}

// New wraps an already resolved directory
func New(root string) NmkHome {
	return NmkHome{root: root}
}

// Locate finds the dotfiles home.
// NMK_HOME wins when it is set and can be resolved to an absolute path,
// otherwise the home is ~/.nmk, which need not exist yet.
func Locate() (NmkHome, error) {
	if root := os.Getenv(EnvNmkHome); root != "" {
		if resolved, err := canonicalize(expandHome(root)); err == nil {
			return New(resolved), nil
		}
	}

	homeDir, err := userHomeDir()
	if err != nil {
		return NmkHome{}, errors.Wrap(err, errors.ErrHomeNotFound, "failed to locate dotfiles directory")
	}
	return New(filepath.Join(homeDir, DefaultHomeDir)), nil
}

func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

func userHomeDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}
	if homeDir = os.Getenv(EnvHome); homeDir != "" {
		return homeDir, nil
	}
	if err == nil {
		err = errors.New(errors.ErrHomeNotFound, "home directory is empty")
	}
	return "", err
}

// expandHome expands a leading ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := userHomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is left alone
	return path
}

// Root returns the dotfiles home
func (h NmkHome) Root() string {
	return h.root
}

// String implements fmt.Stringer
func (h NmkHome) String() string {
	return h.root
}

func (h NmkHome) Bin() string {
	return filepath.Join(h.root, BinDir)
}

func (h NmkHome) Vendor() string {
	return filepath.Join(h.root, VendorDir)
}

func (h NmkHome) VendorBin() string {
	return filepath.Join(h.Vendor(), "bin")
}

func (h NmkHome) VendorLib() string {
	return filepath.Join(h.Vendor(), "lib")
}

func (h NmkHome) Zsh() string {
	return filepath.Join(h.root, ZshDir)
}

func (h NmkHome) Vim() string {
	return filepath.Join(h.root, VimDir)
}

// InitVim returns the vim init file loaded through VIMINIT
func (h NmkHome) InitVim() string {
	return filepath.Join(h.Vim(), "init.vim")
}

func (h NmkHome) Tmux() string {
	return filepath.Join(h.root, TmuxDir)
}

// TmuxHistory returns the tmux command prompt history file
func (h NmkHome) TmuxHistory() string {
	return filepath.Join(h.Tmux(), TmuxHistory)
}

// IsGit reports whether the dotfiles home is a git checkout
func (h NmkHome) IsGit(fs afero.Fs) bool {
	return Exists(fs, filepath.Join(h.root, ".git"))
}

// Exists reports whether path exists on fs
func Exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

// IsDir reports whether path is a directory on fs
func IsDir(fs afero.Fs, path string) bool {
	ok, err := afero.IsDir(fs, path)
	return err == nil && ok
}

// StateDir returns the nmk state directory, honouring XDG_STATE_HOME
func StateDir() string {
	stateHome := os.Getenv(EnvStateHome)
	if stateHome == "" {
		stateHome = xdg.StateHome
	}
	return filepath.Join(stateHome, StateDirName)
}
