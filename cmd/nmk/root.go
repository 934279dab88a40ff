package nmk

import (
	"fmt"
	"time"

	"github.com/nmk-dotfiles/nmk/internal/version"
	"github.com/nmk-dotfiles/nmk/pkg/config"
	"github.com/nmk-dotfiles/nmk/pkg/entrypoint"
	"github.com/nmk-dotfiles/nmk/pkg/logging"
	"github.com/nmk-dotfiles/nmk/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// DepsFactory builds the host dependencies once settings are loaded
type DepsFactory func(cfg *config.Config) *entrypoint.Deps

// app is the state shared by the root command and its subcommands
type app struct {
	factory   DepsFactory
	verbosity int
	cfg       *config.Config
	deps      *entrypoint.Deps
}

// NewRootCmd creates the root command bound to the real host
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDeps(entrypoint.DefaultDeps)
}

// NewRootCmdWithDeps creates the root command with a custom dependency factory
func NewRootCmdWithDeps(factory DepsFactory) *cobra.Command {
	startTime := time.Now()
	initTemplateFormatting()

	a := &app{factory: factory}
	opts := &entrypoint.Options{}

	rootCmd := &cobra.Command{
		Use:     "nmk [flags] [-- tmux args...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Socket = a.cfg.Tmux.Socket
			opts.TmuxArgs = args
			opts.StartTime = startTime
			return entrypoint.Run(cmd.Context(), opts, a.deps)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.Force256Color, "256", "2", false, MsgFlagForce256)
	flags.StringVarP(&opts.Socket, "socket", "L", entrypoint.DefaultSocket, MsgFlagSocket)
	flags.BoolVarP(&opts.Login, "login", "l", false, MsgFlagLogin)
	flags.BoolVar(&opts.DetachOnDestroy, "detach-on-destroy", false, MsgFlagDetachOnDestroy)
	flags.BoolVarP(&opts.Unicode, "unicode", "u", false, MsgFlagUnicode)
	flags.BoolVar(&opts.Inception, "inception", false, MsgFlagInception)
	flags.BoolVar(&opts.Render, "render", false, MsgFlagRender)
	flags.BoolVar(&opts.Motd, "motd", false, MsgFlagMotd)
	flags.BoolVar(&opts.Usage, "usage", false, MsgFlagUsage)
	flags.StringVarP(&opts.TmuxConf, "tmux-conf", "f", "", MsgFlagTmuxConf)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newInfoCmd(a))
	rootCmd.AddCommand(newKeysCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// setup configures logging, loads settings and builds the dependencies
func (a *app) setup(cmd *cobra.Command) error {
	logging.SetupLogger(a.verbosity)
	log.Debug().Str("command", cmd.Name()).Msg("Command started")

	loadOpts := config.LoadOptions{}
	if home, err := paths.Locate(); err == nil {
		loadOpts.Dir = home.Root()
	} else {
		log.Debug().Err(err).Msg("No dotfiles home, skipping user settings")
	}

	// The socket flag only exists on the root command
	if f := cmd.Flags().Lookup("socket"); f != nil && f.Changed {
		loadOpts.Overrides = map[string]interface{}{"tmux.socket": f.Value.String()}
	}

	cfg, err := config.Load(loadOpts)
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	a.cfg = cfg

	a.deps = a.factory(cfg)
	if a.deps.BuildTime.IsZero() {
		a.deps.BuildTime = version.BuildTime()
	}
	return nil
}
