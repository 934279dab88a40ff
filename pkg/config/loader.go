package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/nmk-dotfiles/nmk/pkg/errors"
)

const (
	// EnvPrefix marks environment variables read as configuration
	EnvPrefix = "NMK_CFG_"

	// envSectionSeparator separates the section from the key in variable names
	envSectionSeparator = "__"
)

// UserFileNames are looked up in the dotfiles home, first match wins
var UserFileNames = []string{"nmk.toml", "nmk.yaml", "nmk.yml"}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// Dir is searched for a user file; empty skips the user file
	Dir string

	// Overrides are applied last, keyed by dotted path such as "tmux.socket"
	Overrides map[string]interface{}
}

// Load builds the configuration from all layers
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default configuration")
	}

	// 2. User file
	if path := FindUserFile(opts.Dir); path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load configuration from %s", path)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment configuration")
	}

	// 4. Caller overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply configuration overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the embedded defaults alone
func Default() (*Config, error) {
	return Load(LoadOptions{})
}

// FindUserFile returns the first user configuration file present in dir
func FindUserFile(dir string) string {
	if dir == "" {
		return ""
	}
	for _, name := range UserFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps NMK_CFG_MOTD__UPDATE_NOTICE_AFTER to motd.update_notice_after
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, envSectionSeparator, ".")
}

// Validate rejects values nmk cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Tmux.Socket == "":
		return errors.New(errors.ErrConfigParse, "tmux.socket must not be empty")
	case c.Tmux.TempPrefix == "":
		return errors.New(errors.ErrConfigParse, "tmux.temp_prefix must not be empty")
	case strings.ContainsRune(c.Tmux.TempPrefix+c.Tmux.TempSuffix, filepath.Separator):
		return errors.New(errors.ErrConfigParse, "tmux temp file pattern must not contain a path separator")
	case c.Clipboard.Timeout <= 0:
		return errors.Newf(errors.ErrConfigParse, "clipboard.timeout must be positive, got %s", c.Clipboard.Timeout)
	case c.Motd.UpdateNoticeAfter < 0:
		return errors.Newf(errors.ErrConfigParse, "motd.update_notice_after must not be negative, got %s", c.Motd.UpdateNoticeAfter)
	}
	return nil
}
