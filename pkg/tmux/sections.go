package tmux

import (
	_ "embed"

	"github.com/nmk-dotfiles/nmk/pkg/platform"
)

const (
	keyTable          = "F12"
	copyModeCmd       = "copy-mode -u"
	copyModeBottomCmd = "copy-mode -eu"
	currentPath       = "#{pane_current_path}"
	nextPane          = `select-pane -t :.+ \; display-panes`
	noEnterCopyMode   = "#{?pane_in_mode,1,}#{?alternate_on,1,}"
	lastSession       = "switch-client -l"
)

//go:embed colors/256color.conf
var color256 string

//go:embed colors/8color.conf
var color8 string

const staticOptions = `set-option -g base-index 0
set-option -g display-time 1200
set-option -g history-limit 2500
set-option -g status-keys emacs
set-option -g status-left-length 20
set-option -g status-right-length 60
set-option -g status-right "#{?client_prefix,^B ,}'#[fg=colour51]#{=40:pane_title}#[default]' %H:%M %Z %a, %d"
set-window-option -g mode-keys vi
`

func options(w *lineWriter, c *Context) {
	w.raw(staticOptions)
	w.linef(`set-option -g default-shell "%s"`, c.DefaultShell)
	w.linef(`set-option -g default-terminal "%s"`, c.DefaultTerm)
	w.linef(`set-option -g detach-on-destroy "%s"`, onOff(c.DetachOnDestroy))
	if c.HistoryFile != "" {
		w.linef(`set-option -g history-file "%s"`, c.HistoryFile)
	}
}

func prefixKeys(w *lineWriter, _ *Context) {
	w.line("unbind-key C-b")
	w.line("bind-key -r C-b send-prefix")
	w.linef("bind-key -r b %s", nextPane)
}

func functionKeys(w *lineWriter, v Version) {
	w.linef("bind-key -n F1 %s", nextPane)
	w.line("bind-key -n F2 last-window")
	w.line("bind-key -n F3 previous-window")
	w.line("bind-key -n F4 next-window")
	w.line("bind-key -n F5 resize-pane -Z")
	w.linef("bind-key -n F6 %s", chooseTree(v))
	w.line("bind-key -n F8 switch-client -n")
	for n := 1; n <= 12; n++ {
		w.linef("bind-key -n S-F%d send-keys F%d", n, n)
	}
}

// chooseTree gains -s from 2.6 and zooms the pane (-Z) from 2.7
func chooseTree(v Version) string {
	cmd := "choose-tree"
	if v >= V26 {
		cmd += " -s"
	}
	if v >= V27 {
		cmd += " -Z"
	}
	return cmd
}

func f12KeyTable(w *lineWriter, _ *Context) {
	w.line("bind-key F12 send-keys F12")
	w.linef("bind-key -n F12 switch-client -T %s", keyTable)
	for n := 1; n <= 11; n++ {
		w.linef("bind-key -T %s F%d send-keys F%d", keyTable, n, n)
	}
	w.linef("bind-key -T %s F12 detach-client", keyTable)
	w.linef("bind-key -T %s -r Space next-layout", keyTable)
	for n := 1; n <= 9; n++ {
		w.linef("bind-key -T %s %d select-window -t %d", keyTable, n, n)
	}
}

var currentPathBindings = []struct {
	key     string
	command string
}{
	{"%", "split-window -h"},
	{"|", "split-window -h"},
	{"_", "split-window"},
	{"c", "new-window"},
	{`'"'`, "split-window"},
}

func paneCurrentPath(w *lineWriter, _ *Context) {
	for _, b := range currentPathBindings {
		w.linef("unbind-key %s", b.key)
		w.linef("bind-key %s %s -c '%s'", b.key, b.command, currentPath)
	}
	w.linef(`bind-key C command-prompt "new-session -c '%s' -s '%%%%'"`, currentPath)
}

func copyMode(w *lineWriter, c *Context) {
	w.linef("bind-key C-u %s", copyModeCmd)
	if clip := clipboardCommand(c); clip != "" {
		w.linef(`bind-key -T copy-mode-vi y send-keys -X copy-pipe-and-cancel "%s"`, clip)
	}
	// PageUp enters copy mode unless the pane is already in a mode or on the alternate screen
	w.linef(`bind-key -T root PageUp if-shell -F "%s" "send-keys PageUp" "%s"`, noEnterCopyMode, copyModeBottomCmd)
	for _, b := range []struct{ key, command string }{
		{"PageUp", "halfpage-up"},
		{"PageDown", "halfpage-down"},
	} {
		w.linef("unbind-key -T copy-mode-vi %s", b.key)
		w.linef("bind-key -T copy-mode-vi %s send-keys -X %s", b.key, b.command)
	}
}

func clipboardCommand(c *Context) string {
	switch {
	case c.Platform == platform.MacOS:
		return "pbcopy"
	case c.ClipboardAvailable:
		return "xclip -selection clipboard"
	default:
		return ""
	}
}

// colors writes the palette followed by an empty line before the end marker
func colors(w *lineWriter, c *Context) {
	if c.Support256Color {
		w.line(color256)
	} else {
		w.line(color8)
	}
}
