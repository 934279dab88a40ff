package nmk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nmk-dotfiles/nmk/internal/version"
	"github.com/nmk-dotfiles/nmk/pkg/config"
	"github.com/nmk-dotfiles/nmk/pkg/entrypoint"
	"github.com/nmk-dotfiles/nmk/pkg/errors"
	"github.com/nmk-dotfiles/nmk/pkg/info"
	"github.com/nmk-dotfiles/nmk/pkg/terminal"
	"github.com/nmk-dotfiles/nmk/pkg/tmux"
	"github.com/nmk-dotfiles/nmk/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		tmuxVersion string
		all         bool
		outputDir   string
		force256    bool
		detach      bool
	)

	cmd := &cobra.Command{
		Use:     "render",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				for _, v := range tmux.Versions() {
					c := tmux.DefaultContext()
					c.Support256Color = force256
					c.DefaultTerm = terminal.DefaultTerm(force256)
					c.DetachOnDestroy = detach

					var buf bytes.Buffer
					if err := tmux.Render(&buf, c, v); err != nil {
						return errors.Wrap(err, errors.ErrRender, "failed to render tmux configuration")
					}
					if err := writeRendered(cmd, a.deps.Fs, outputDir, v, buf.Bytes()); err != nil {
						return err
					}
				}
				return nil
			}

			ctx := cmd.Context()
			home, err := a.deps.Home()
			if err != nil {
				return err
			}
			if err := entrypoint.Prepare(a.deps, home); err != nil {
				return err
			}

			v, err := targetVersion(ctx, a.deps, tmuxVersion)
			if err != nil {
				return err
			}

			opts := &entrypoint.Options{Force256Color: force256, DetachOnDestroy: detach}
			support256 := entrypoint.Support256Color(a.deps, opts)
			data, err := entrypoint.RenderConfig(ctx, a.deps, opts, home, v, support256)
			if err != nil {
				return err
			}
			return writeRendered(cmd, a.deps.Fs, outputDir, v, data)
		},
	}

	cmd.Flags().StringVar(&tmuxVersion, "version", "", MsgFlagTmuxVersion)
	cmd.Flags().BoolVar(&all, "all", false, MsgFlagAll)
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVarP(&force256, "256", "2", false, MsgFlagForce256)
	cmd.Flags().BoolVar(&detach, "detach-on-destroy", false, MsgFlagDetachOnDestroy)
	cmd.MarkFlagsMutuallyExclusive("all", "version")

	return cmd
}

// targetVersion parses an explicit version or detects the installed one
func targetVersion(ctx context.Context, d *entrypoint.Deps, explicit string) (tmux.Version, error) {
	if explicit != "" {
		return tmux.ParseVersionNumber(explicit)
	}
	return entrypoint.FindVersion(ctx, d)
}

// writeRendered prints data, or writes it to <dir>/<version>.tmux.conf
func writeRendered(cmd *cobra.Command, fs afero.Fs, dir string, v tmux.Version, data []byte) error {
	if dir == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, MsgErrOutputDir, dir)
	}
	path := filepath.Join(dir, v.String()+".tmux.conf")
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, MsgErrWriteFile, path)
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), MsgRenderedFile, path)
	return nil
}

func newInfoCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "info",
		Short:   MsgInfoShort,
		Long:    MsgInfoLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}

			home, err := a.deps.Home()
			if err != nil {
				return err
			}
			if err := entrypoint.Prepare(a.deps, home); err != nil {
				return err
			}

			build := info.NewBuild(version.Version, version.Commit, version.Date)
			report, err := info.Collect(cmd.Context(), a.deps, build)
			if err != nil {
				return err
			}
			return info.Render(cmd.OutOrStdout(), f.Resolve(os.Stdout), report)
		},
	}

	cmd.Flags().StringVar(&format, "format", "auto", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json", "toml"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newKeysCmd(a *app) *cobra.Command {
	var (
		tmuxVersion string
		raw         bool
	)

	cmd := &cobra.Command{
		Use:     "keys",
		Short:   MsgKeysShort,
		Long:    MsgKeysLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := targetVersion(cmd.Context(), a.deps, tmuxVersion)
			if err != nil {
				if tmuxVersion != "" {
					return err
				}
				versions := tmux.Versions()
				v = versions[len(versions)-1]
				log.Debug().Err(err).Stringer("version", v).Msg("tmux not detected, using newest version")
			}

			c := tmux.DefaultContext()
			c.Platform = a.deps.Platform

			var buf bytes.Buffer
			if err := tmux.Render(&buf, c, v); err != nil {
				return errors.Wrap(err, errors.ErrRender, "failed to render tmux configuration")
			}
			md := tmux.Cheatsheet(tmux.ParseBindings(buf.String()), v)

			out := cmd.OutOrStdout()
			switch {
			case raw:
				_, err = io.WriteString(out, md)
			case stdoutIsTerminal():
				_, err = io.WriteString(out, ui.NewMarkdownRenderer().Render(md))
			default:
				_, err = io.WriteString(out, ui.NewPlainMarkdownRenderer().Render(md))
			}
			return err
		},
	}

	cmd.Flags().StringVar(&tmuxVersion, "version", "", MsgFlagTmuxVersion)
	cmd.Flags().BoolVar(&raw, "raw", false, MsgFlagRaw)

	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: MsgConfigDumpShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.cfg.Dump()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "template",
		Short: MsgConfigTmplShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), config.Template())
			return err
		},
	})

	return cmd
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "nmk "+version.Verbose(a.deps.Now()))
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "NMK",
				Section: "1",
				Source:  "nmk " + version.Version,
				Manual:  "nmk manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
