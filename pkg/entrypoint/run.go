package entrypoint

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/nmk-dotfiles/nmk/pkg/errors"
	"github.com/nmk-dotfiles/nmk/pkg/logging"
	"github.com/nmk-dotfiles/nmk/pkg/paths"
	"github.com/nmk-dotfiles/nmk/pkg/tmux"
	"github.com/nmk-dotfiles/nmk/pkg/ui/styles"
)

// Run prepares the environment and execs tmux or zsh.
// It returns nil without exec only when opts.Render is set.
func Run(ctx context.Context, opts *Options, d *Deps) error {
	logger := logging.GetLogger("entrypoint")

	if opts.Motd {
		if err := DisplayMOTD(d.Stdout, d.Fs, d.Config.Motd.Files); err != nil {
			return err
		}
		if notice := SinceBuildNotice(d.BuildTime, d.Now(), d.Config.Motd.UpdateNoticeAfter); notice != "" {
			_, _ = fmt.Fprintln(d.Stdout, styles.Render("Notice", notice))
		}
	}

	home, err := d.Home()
	if err != nil {
		return err
	}
	logger.Debug().Str("home", home.Root()).Msg("Dotfiles directory")

	if err := Prepare(d, home); err != nil {
		return err
	}

	if opts.Login {
		return ExecLoginShell(d, opts)
	}

	v, err := FindVersion(ctx, d)
	if err != nil {
		return err
	}
	logger.Debug().Stringer("version", v).Msg("tmux version")
	if err := export(d.Env, EnvNmkTmuxVersion, v.String()); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to export tmux version")
	}

	support256 := Support256Color(d, opts)

	conf := opts.TmuxConf
	if conf == "" {
		data, err := RenderConfig(ctx, d, opts, home, v, support256)
		if err != nil {
			return err
		}
		if opts.Render {
			_, err := d.Stdout.Write(data)
			return err
		}

		if err := CheckNesting(d.Env, opts); err != nil {
			return err
		}
		if conf, err = WriteTempConfig(d, data); err != nil {
			return err
		}
	} else if err := CheckNesting(d.Env, opts); err != nil {
		return err
	}

	return ExecTmux(d, opts, conf, v, support256)
}

// Prepare rewrites the search paths and exports the dotfiles variables
func Prepare(d *Deps, home paths.NmkHome) error {
	steps := []func(*Deps, paths.NmkHome) error{
		SetupLibraryPath,
		SetupSearchPath,
		SetupEnvironment,
		SetupZsh,
	}
	for _, step := range steps {
		if err := step(d, home); err != nil {
			return err
		}
	}
	return export(d.Env, EnvNmkInitialized, "1")
}

// RenderConfig renders the tmux configuration for the current host
func RenderConfig(ctx context.Context, d *Deps, opts *Options, home paths.NmkHome, v tmux.Version, support256 bool) ([]byte, error) {
	defer logging.LogDuration(time.Now(), "render tmux configuration")

	c, err := MakeContext(ctx, d, opts, home, support256)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(8192)
	if err := tmux.Render(&buf, c, v); err != nil {
		return nil, errors.Wrap(err, errors.ErrRender, "failed to render tmux configuration")
	}
	logger := logging.GetLogger("entrypoint")
	logger.Debug().Int("bytes", buf.Len()).Msg("Rendered tmux configuration")
	return buf.Bytes(), nil
}
