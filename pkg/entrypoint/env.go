package entrypoint

import (
	"os"
	"sort"

	"github.com/nmk-dotfiles/nmk/pkg/logging"
)

// Environment variable names
const (
	EnvPath            = "PATH"
	EnvLdLibraryPath   = "LD_LIBRARY_PATH"
	EnvNmkHome         = "NMK_HOME"
	EnvZdotdir         = "ZDOTDIR"
	EnvViminit         = "VIMINIT"
	EnvEditor          = "EDITOR"
	EnvNmkInitialized  = "NMK_INITIALIZED"
	EnvNmkTmuxVersion  = "NMK_TMUX_VERSION"
	EnvNmkZshGlobalRcs = "NMK_ZSH_GLOBAL_RCS"
	EnvTmux            = "TMUX"
	EnvTerm            = "TERM"
	EnvColorterm       = "COLORTERM"
)

// Env is the process environment
type Env interface {
	Getenv(key string) string
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
	Unsetenv(key string) error
	Environ() []string
}

// OSEnv is the real process environment
type OSEnv struct{}

func (OSEnv) Getenv(key string) string { return os.Getenv(key) }
func (OSEnv) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }
func (OSEnv) Setenv(key, value string) error { return os.Setenv(key, value) }
func (OSEnv) Unsetenv(key string) error { return os.Unsetenv(key) }
func (OSEnv) Environ() []string { return os.Environ() }

// MapEnv is an in-memory environment
type MapEnv map[string]string

func (m MapEnv) Getenv(key string) string { return m[key] }

func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapEnv) Setenv(key, value string) error {
	m[key] = value
	return nil
}

func (m MapEnv) Unsetenv(key string) error {
	delete(m, key)
	return nil
}

// Environ returns KEY=value pairs sorted by key
func (m MapEnv) Environ() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+m[k])
	}
	return out
}

// export sets a variable and logs it
func export(env Env, key, value string) error {
	if err := env.Setenv(key, value); err != nil {
		return err
	}
	logger := logging.GetLogger("entrypoint")
	logger.Debug().Str("key", key).Str("value", value).Msg("export")
	return nil
}
