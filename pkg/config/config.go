package config

import (
	"time"
)

// Config is the full nmk configuration
type Config struct {
	Tmux      TmuxConfig      `koanf:"tmux" toml:"tmux"`
	Terminal  TerminalConfig  `koanf:"terminal" toml:"terminal"`
	Clipboard ClipboardConfig `koanf:"clipboard" toml:"clipboard"`
	Editor    EditorConfig    `koanf:"editor" toml:"editor"`
	Motd      MotdConfig      `koanf:"motd" toml:"motd"`
}

type TmuxConfig struct {
	Socket     string `koanf:"socket" toml:"socket"`
	TempPrefix string `koanf:"temp_prefix" toml:"temp_prefix"`
	TempSuffix string `koanf:"temp_suffix" toml:"temp_suffix"`
}

type TerminalConfig struct {
	Terms      []string `koanf:"terms" toml:"terms"`
	Colorterms []string `koanf:"colorterms" toml:"colorterms"`
}

type ClipboardConfig struct {
	Timeout time.Duration `koanf:"timeout" toml:"timeout"`
}

type EditorConfig struct {
	Preferred []string `koanf:"preferred" toml:"preferred"`
}

type MotdConfig struct {
	Files             []string      `koanf:"files" toml:"files"`
	UpdateNoticeAfter time.Duration `koanf:"update_notice_after" toml:"update_notice_after"`
}
