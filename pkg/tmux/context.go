package tmux

import "github.com/nmk-dotfiles/nmk/pkg/platform"

// Context holds render-time parameters.
// Every field is resolved before rendering; Render never inspects the host.
type Context struct {
	Support256Color bool
	DetachOnDestroy bool
	// DefaultShell is the absolute path of the shell tmux starts in new panes
	DefaultShell string
	// DefaultTerm is "screen" or "screen-256color"
	DefaultTerm string
	// HistoryFile is the tmux command history file; empty means unset
	HistoryFile string
	Platform    platform.Type
	// ClipboardAvailable reports whether xclip answered the availability probe
	ClipboardAvailable bool
}

// DefaultContext returns a context for an 8-colour terminal running zsh
func DefaultContext() *Context {
	return &Context{
		DefaultShell: "/bin/zsh",
		DefaultTerm:  "screen",
		Platform:     platform.Linux,
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
