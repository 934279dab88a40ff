package entrypoint

import (
	"path/filepath"

	"github.com/kballard/go-shellquote"
	"github.com/nmk-dotfiles/nmk/pkg/errors"
	"github.com/nmk-dotfiles/nmk/pkg/logging"
	"github.com/nmk-dotfiles/nmk/pkg/pathvec"
	"github.com/nmk-dotfiles/nmk/pkg/paths"
	"github.com/nmk-dotfiles/nmk/pkg/platform"
)

// SetupLibraryPath prepends the vendored library directory to LD_LIBRARY_PATH
// when it exists
func SetupLibraryPath(d *Deps, home paths.NmkHome) error {
	vendorLib := home.VendorLib()
	if !paths.IsDir(d.Fs, vendorLib) {
		return nil
	}

	libPath := pathvec.Parse(d.Env.Getenv(EnvLdLibraryPath))
	libPath.PushFront(vendorLib)
	return export(d.Env, EnvLdLibraryPath, libPath.Join())
}

// SetupSearchPath puts the dotfiles bin directories in front of PATH and
// drops duplicates and version manager shims
func SetupSearchPath(d *Deps, home paths.NmkHome) error {
	current, ok := d.Env.LookupEnv(EnvPath)
	if !ok {
		return errors.New(errors.ErrPathEnv, "PATH is not set")
	}

	searchPath := pathvec.Parse(current)
	// pushed in reverse so bin ends up first
	for _, dir := range []string{home.VendorBin(), home.Bin()} {
		if paths.IsDir(d.Fs, dir) {
			searchPath.PushFront(dir)
		}
	}
	searchPath = searchPath.Unique().WithoutVersionManagers()
	return export(d.Env, EnvPath, searchPath.Join())
}

// SetupEnvironment exports the dotfiles variables and picks an editor
func SetupEnvironment(d *Deps, home paths.NmkHome) error {
	vars := [][2]string{
		{EnvNmkHome, home.Root()},
		{EnvZdotdir, home.Zsh()},
		{EnvViminit, VimInit(home.InitVim())},
	}
	for _, kv := range vars {
		if err := export(d.Env, kv[0], kv[1]); err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "failed to export %s", kv[0])
		}
	}
	return SetupPreferredEditor(d, d.Config.Editor.Preferred)
}

// VimInit returns the VIMINIT command sourcing initVim, quoted for the shell
func VimInit(initVim string) string {
	return shellquote.Join("source", initVim)
}

// SetupPreferredEditor sets EDITOR to the first preferred editor on PATH.
// An existing EDITOR is kept, with a warning when it cannot be found.
func SetupPreferredEditor(d *Deps, preferred []string) error {
	logger := logging.GetLogger("entrypoint")

	if editor, ok := d.Env.LookupEnv(EnvEditor); ok {
		if _, err := d.LookPath(editor); err != nil {
			logger.Warn().Str("editor", editor).Msg("EDITOR is not an executable")
		}
		return nil
	}

	for _, editor := range preferred {
		if _, err := d.LookPath(editor); err == nil {
			logger.Debug().Str("editor", editor).Msg("Using preferred editor")
			return export(d.Env, EnvEditor, editor)
		}
	}
	return nil
}

// UseGlobalRcs reports whether zsh should read the /etc rc files.
// macOS, Alpine and Arch reset PATH from them, so they are skipped there
// unless a vendored zsh is installed.
func UseGlobalRcs(d *Deps, home paths.NmkHome) bool {
	switch d.Platform {
	case platform.MacOS, platform.Alpine, platform.Arch:
		return paths.Exists(d.Fs, filepath.Join(home.VendorBin(), "zsh"))
	default:
		return true
	}
}

// SetupZsh exports NMK_ZSH_GLOBAL_RCS
func SetupZsh(d *Deps, home paths.NmkHome) error {
	global := UseGlobalRcs(d, home)
	if !global {
		logger := logging.GetLogger("entrypoint")
		logger.Debug().Msg("Ignoring zsh global rcs")
	}
	return export(d.Env, EnvNmkZshGlobalRcs, oneHot(global))
}

func oneHot(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
