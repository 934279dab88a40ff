// Package container detects whether nmk runs inside a Docker or
// Kubernetes container by inspecting the control groups of PID 1.
package container

import (
	"strings"

	"github.com/nmk-dotfiles/nmk/pkg/platform"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// InitControlGroup is the cgroup file of the init process
const InitControlGroup = "/proc/1/cgroup"

// CGroup is one line of a /proc/<pid>/cgroup file
type CGroup struct {
	HierarchyID  string
	Subsystems   string
	ControlGroup string
}

// ParseCGroup parses "hierarchy-id:subsystems:control-group"
func ParseCGroup(line string) (CGroup, bool) {
	parts := strings.SplitN(line, ":", 3)
	if len(parts) != 3 {
		return CGroup{}, false
	}
	return CGroup{
		HierarchyID:  parts[0],
		Subsystems:   parts[1],
		ControlGroup: parts[2],
	}, true
}

// IsContainer reports whether the control group belongs to docker or kubernetes
func (c CGroup) IsContainer() bool {
	return strings.HasPrefix(c.ControlGroup, "/docker") || strings.HasPrefix(c.ControlGroup, "/kube")
}

// IsContainerCGroups reports whether any line of a cgroup file is a container group
func IsContainerCGroups(contents string) bool {
	for _, line := range strings.Split(contents, "\n") {
		if cg, ok := ParseCGroup(line); ok && cg.IsContainer() {
			return true
		}
	}
	return false
}

// IsContainerized reports whether the init process runs in a container.
// macOS never is; an unreadable cgroup file counts as not containerized.
func IsContainerized(fs afero.Fs, p platform.Type) bool {
	if p.IsMac() {
		return false
	}
	contents, err := afero.ReadFile(fs, InitControlGroup)
	if err != nil {
		log.Debug().Err(err).Str("path", InitControlGroup).Msg("Cannot read cgroup of init process")
		return false
	}
	return IsContainerCGroups(string(contents))
}
