// Package info reports how nmk sees the current host.
package info

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/nmk-dotfiles/nmk/pkg/config"
	"github.com/nmk-dotfiles/nmk/pkg/container"
	"github.com/nmk-dotfiles/nmk/pkg/entrypoint"
	"github.com/nmk-dotfiles/nmk/pkg/errors"
	"github.com/nmk-dotfiles/nmk/pkg/pathvec"
	"github.com/nmk-dotfiles/nmk/pkg/ui"
	"github.com/nmk-dotfiles/nmk/pkg/ui/styles"
	"github.com/pelletier/go-toml/v2"
)

// Build identifies the nmk binary
type Build struct {
	Version   string `json:"version" toml:"version"`
	Commit    string `json:"commit" toml:"commit"`
	Date      string `json:"date" toml:"date"`
	GoVersion string `json:"go_version" toml:"go_version"`
	Target    string `json:"target" toml:"target"`
}

// Host describes the environment nmk runs in
type Host struct {
	Home            string   `json:"home" toml:"home"`
	HomeIsGit       bool     `json:"home_is_git" toml:"home_is_git"`
	ConfigFile      string   `json:"config_file,omitempty" toml:"config_file,omitempty"`
	Platform        string   `json:"platform" toml:"platform"`
	Containerized   bool     `json:"containerized" toml:"containerized"`
	Term            string   `json:"term" toml:"term"`
	Colorterm       string   `json:"colorterm,omitempty" toml:"colorterm,omitempty"`
	Support256Color bool     `json:"support_256_color" toml:"support_256_color"`
	TmuxVersion     string   `json:"tmux_version,omitempty" toml:"tmux_version,omitempty"`
	TmuxError       string   `json:"tmux_error,omitempty" toml:"tmux_error,omitempty"`
	TmuxErrorCode   string   `json:"tmux_error_code,omitempty" toml:"tmux_error_code,omitempty"`
	SearchPath      []string `json:"search_path,omitempty" toml:"search_path,omitempty"`
}

// Info is the full report
type Info struct {
	Build Build `json:"build" toml:"build"`
	Host  Host  `json:"host" toml:"host"`
}

// NewBuild fills in the runtime fields of a build description
func NewBuild(version, commit, date string) Build {
	return Build{
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
		Target:    runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Collect inspects the host. tmux problems are reported in the result
// instead of failing the whole report.
func Collect(ctx context.Context, d *entrypoint.Deps, build Build) (*Info, error) {
	home, err := d.Home()
	if err != nil {
		return nil, err
	}

	host := Host{
		Home:            home.Root(),
		HomeIsGit:       home.IsGit(d.Fs),
		ConfigFile:      config.FindUserFile(home.Root()),
		Platform:        d.Platform.String(),
		Containerized:   container.IsContainerized(d.Fs, d.Platform),
		Term:            d.Env.Getenv(entrypoint.EnvTerm),
		Colorterm:       d.Env.Getenv(entrypoint.EnvColorterm),
		Support256Color: entrypoint.Support256Color(d, &entrypoint.Options{}),
		SearchPath:      pathvec.Parse(d.Env.Getenv(entrypoint.EnvPath)).Paths(),
	}

	if v, err := entrypoint.FindVersion(ctx, d); err != nil {
		host.TmuxError = err.Error()
		host.TmuxErrorCode = string(errors.GetErrorCode(err))
	} else {
		host.TmuxVersion = v.String()
	}

	return &Info{Build: build, Host: host}, nil
}

// Render writes the report in the given format
func Render(w io.Writer, format ui.Format, inf *Info) error {
	switch format {
	case ui.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(inf)
	case ui.FormatTOML:
		enc := toml.NewEncoder(w)
		return enc.Encode(inf)
	case ui.FormatTerminal:
		return renderText(w, inf, true)
	case ui.FormatText, ui.FormatAuto:
		return renderText(w, inf, false)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unsupported format: %s", format)
	}
}

func renderText(w io.Writer, inf *Info, styled bool) error {
	header := func(s string) string {
		if styled {
			return styles.Render("Header", s)
		}
		return s
	}
	row := func(k, v string) string {
		if styled {
			return styles.Render("Key", k) + styles.Render("Value", v)
		}
		return fmt.Sprintf("%-20s%s", k, v)
	}

	lines := []string{
		header("build"),
		row("version", inf.Build.Version),
		row("commit", inf.Build.Commit),
		row("date", inf.Build.Date),
		row("go", inf.Build.GoVersion),
		row("target", inf.Build.Target),
		"",
		header("host"),
		row("home", inf.Host.Home),
		row("home is git", yesNo(inf.Host.HomeIsGit)),
		row("config file", orNone(inf.Host.ConfigFile)),
		row("platform", inf.Host.Platform),
		row("containerized", yesNo(inf.Host.Containerized)),
		row("TERM", orNone(inf.Host.Term)),
		row("COLORTERM", orNone(inf.Host.Colorterm)),
		row("256 colours", yesNo(inf.Host.Support256Color)),
	}
	if inf.Host.TmuxError != "" {
		lines = append(lines, row("tmux", "error: "+inf.Host.TmuxError))
	} else {
		lines = append(lines, row("tmux", inf.Host.TmuxVersion))
	}
	for i, p := range inf.Host.SearchPath {
		key := ""
		if i == 0 {
			key = "PATH"
		}
		lines = append(lines, row(key, p))
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
