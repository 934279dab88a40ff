// Package clipboard probes whether an X clipboard utility is usable.
package clipboard

import (
	"context"
	"os/exec"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultTimeout bounds the xclip probe; xclip can hang without a display
const DefaultTimeout = 500 * time.Millisecond

// Prober answers whether copying to the system clipboard is possible
type Prober interface {
	Available(ctx context.Context) bool
}

// XclipProber runs `xclip -o` and treats a zero exit status as available
type XclipProber struct {
	Bin     string
	Timeout time.Duration
}

// NewXclipProber returns a prober for the xclip binary found in PATH
func NewXclipProber(timeout time.Duration) *XclipProber {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &XclipProber{Bin: "xclip", Timeout: timeout}
}

// Available reports whether xclip exited successfully before the timeout.
// Every failure, including a missing binary, counts as unavailable.
func (p *XclipProber) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.Bin, "-o")
	err := cmd.Run()
	log.Debug().Err(err).Str("bin", p.Bin).Msg("Clipboard probe finished")
	return err == nil
}

// Static is a Prober with a fixed answer
type Static bool

// Available returns the fixed answer
func (s Static) Available(context.Context) bool {
	return bool(s)
}
