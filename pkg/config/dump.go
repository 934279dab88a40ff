package config

import (
	"strings"

	"github.com/nmk-dotfiles/nmk/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// tomlView mirrors Config with durations as text
type tomlView struct {
	Tmux      TmuxConfig     `toml:"tmux"`
	Terminal  TerminalConfig `toml:"terminal"`
	Clipboard struct {
		Timeout string `toml:"timeout"`
	} `toml:"clipboard"`
	Editor EditorConfig `toml:"editor"`
	Motd   struct {
		Files             []string `toml:"files"`
		UpdateNoticeAfter string   `toml:"update_notice_after"`
	} `toml:"motd"`
}

// Dump renders the effective configuration as TOML
func (c *Config) Dump() ([]byte, error) {
	var v tomlView
	v.Tmux = c.Tmux
	v.Terminal = c.Terminal
	v.Clipboard.Timeout = c.Clipboard.Timeout.String()
	v.Editor = c.Editor
	v.Motd.Files = c.Motd.Files
	v.Motd.UpdateNoticeAfter = c.Motd.UpdateNoticeAfter.String()

	out, err := toml.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return out, nil
}

// Template returns the defaults with every value commented out, ready to be
// saved as a user file
func Template() string {
	return commentOutConfigValues(DefaultsContent())
}

// commentOutConfigValues comments out assignments, keeping blank lines,
// comments and section headers
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "",
			strings.HasPrefix(trimmed, "#"),
			strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
