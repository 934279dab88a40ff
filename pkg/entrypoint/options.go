package entrypoint

import "time"

// DefaultSocket is the tmux socket name used when none is given
const DefaultSocket = "nmk"

// Options are the command-line choices for a run
type Options struct {
	// Force256Color assumes the terminal supports 256 colours
	Force256Color bool
	// Socket is the tmux server socket name
	Socket string
	// Login execs a zsh login shell instead of tmux
	Login bool
	// DetachOnDestroy detaches the client when its session is destroyed
	DetachOnDestroy bool
	// Unicode passes -u to tmux
	Unicode bool
	// Inception allows starting tmux inside tmux
	Inception bool
	// Render prints the tmux configuration instead of starting tmux
	Render bool
	// Motd prints the message of the day before starting
	Motd bool
	// Usage prints the startup time in microseconds before exec
	Usage bool
	// TmuxConf uses an existing configuration file instead of rendering one
	TmuxConf string
	// TmuxArgs are passed to tmux after the configuration flags
	TmuxArgs []string

	// StartTime is when the process started, used by Usage
	StartTime time.Time
}

// socket returns the configured socket, falling back to DefaultSocket
func (o *Options) socket() string {
	if o.Socket == "" {
		return DefaultSocket
	}
	return o.Socket
}
