package nmk

import (
	_ "embed"
	"strings"
)

// Short messages
const (
	MsgRootShort       = "Start tmux with the nmk dotfiles environment"
	MsgRenderShort     = "Print the generated tmux configuration"
	MsgInfoShort       = "Show build and host information"
	MsgKeysShort       = "Show a cheat-sheet of the tmux key bindings"
	MsgConfigShort     = "Show nmk settings"
	MsgConfigDumpShort = "Print the effective settings"
	MsgConfigTmplShort = "Print a commented settings file"
	MsgVersionShort    = "Print the version"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"

	// Flag descriptions
	MsgFlagVerbose         = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagForce256        = "Assume the terminal supports 256 colors"
	MsgFlagSocket          = "tmux socket name"
	MsgFlagLogin           = "Start a zsh login shell instead of tmux"
	MsgFlagDetachOnDestroy = "Detach the client when its session is destroyed"
	MsgFlagUnicode         = "Tell tmux the terminal supports UTF-8"
	MsgFlagInception       = "Allow starting tmux inside tmux"
	MsgFlagRender          = "Print the tmux configuration and exit"
	MsgFlagMotd            = "Print the message of the day"
	MsgFlagUsage           = "Print the startup time in microseconds"
	MsgFlagTmuxConf        = "Use this tmux configuration instead of generating one"
	MsgFlagTmuxVersion     = "Target this tmux version instead of the installed one"
	MsgFlagAll             = "Render every supported tmux version"
	MsgFlagOutput          = "Write files to this directory instead of stdout"
	MsgFlagFormat          = "Output format (auto, term, text, json, toml)"
	MsgFlagRaw             = "Print markdown without rendering it"

	// Status messages
	MsgRenderedFile = "Wrote %s\n"

	// Error messages
	MsgErrLoadConfig = "failed to load settings: %w"
	MsgErrOutputDir  = "failed to create output directory %s"
	MsgErrWriteFile  = "failed to write %s"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/info-long.txt
	msgInfoLongRaw string
	MsgInfoLong    = strings.TrimSpace(msgInfoLongRaw)

	//go:embed msgs/keys-long.txt
	msgKeysLongRaw string
	MsgKeysLong    = strings.TrimSpace(msgKeysLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
