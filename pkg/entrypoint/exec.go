package entrypoint

import (
	"fmt"
	"strings"
	"time"

	"github.com/nmk-dotfiles/nmk/pkg/errors"
	"github.com/nmk-dotfiles/nmk/pkg/logging"
	"github.com/nmk-dotfiles/nmk/pkg/tmux"
)

// TmuxArgs builds the tmux argv. Without extra arguments it attaches to or
// creates the default session.
func TmuxArgs(opts *Options, conf string, v tmux.Version, support256 bool) []string {
	args := []string{TmuxBin, "-L", opts.socket()}
	if support256 {
		args = append(args, "-2")
	}
	if opts.Unicode {
		args = append(args, "-u")
	}
	args = append(args, "-f", conf)

	if len(opts.TmuxArgs) == 0 {
		args = append(args, "new-session", "-A")
		// tmux 3.1 names the first session 0 by itself
		if v < tmux.V31 {
			args = append(args, "-s", "0")
		}
		return args
	}
	return append(args, opts.TmuxArgs...)
}

// CheckNesting refuses to attach from inside tmux unless inception is allowed.
// Explicit tmux commands are always allowed.
func CheckNesting(env Env, opts *Options) error {
	if opts.Inception || len(opts.TmuxArgs) > 0 {
		return nil
	}
	if _, ok := env.LookupEnv(EnvTmux); ok {
		return errors.New(errors.ErrTmuxNested, "add --inception to allow nested tmux sessions")
	}
	return nil
}

// ExecTmux replaces the process with tmux. It only returns on failure.
func ExecTmux(d *Deps, opts *Options, conf string, v tmux.Version, support256 bool) error {
	bin, err := d.LookPath(TmuxBin)
	if err != nil {
		return errors.Wrap(err, errors.ErrTmuxNotFound, "tmux not found")
	}
	return execve(d, opts, bin, TmuxArgs(opts, conf, v, support256))
}

// ExecLoginShell replaces the process with a zsh login shell
func ExecLoginShell(d *Deps, opts *Options) error {
	bin, err := d.LookPath(ZshBin)
	if err != nil {
		return errors.Wrap(err, errors.ErrZshNotFound, "zsh not found")
	}
	return execve(d, opts, bin, []string{"-" + ZshBin})
}

func execve(d *Deps, opts *Options, bin string, argv []string) error {
	logging.LogCommand(bin, argv)
	PrintUsageTime(d, opts)

	if err := d.Exec(bin, argv, d.Env.Environ()); err != nil {
		return errors.Wrapf(err, errors.ErrExec, "exec %s failed", strings.Join(argv, " "))
	}
	return nil
}

// PrintUsageTime reports the time spent before exec, in microseconds on
// stdout with --usage and in the debug log otherwise
func PrintUsageTime(d *Deps, opts *Options) {
	if opts.StartTime.IsZero() {
		return
	}
	elapsed := d.Now().Sub(opts.StartTime)
	if opts.Usage {
		_, _ = fmt.Fprintln(d.Stdout, elapsed.Microseconds())
		return
	}
	logger := logging.GetLogger("entrypoint")
	logger.Debug().Dur("usage", elapsed.Round(time.Microsecond)).Msg("Usage time")
}
