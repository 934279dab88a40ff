// Package pathvec manipulates PATH-style search lists.
package pathvec

import (
	"os"
	"path/filepath"
	"strings"
)

// versionManagerShims are removed so nmk's own PATH order is not shadowed
var versionManagerShims = []string{".pyenv/shims", ".rbenv/shims"}

// PathVec is an ordered list of directories
type PathVec struct {
	paths []string
}

// Parse splits a list joined by the OS list separator, dropping empty entries
func Parse(s string) *PathVec {
	v := &PathVec{}
	if s == "" {
		return v
	}
	for _, p := range filepath.SplitList(s) {
		if p != "" {
			v.paths = append(v.paths, p)
		}
	}
	return v
}

// PushFront prepends a directory
func (v *PathVec) PushFront(p string) {
	v.paths = append([]string{p}, v.paths...)
}

// Paths returns a copy of the directories
func (v *PathVec) Paths() []string {
	return append([]string(nil), v.paths...)
}

// Len returns the number of directories
func (v *PathVec) Len() int {
	return len(v.paths)
}

// Unique returns a copy keeping only the first occurrence of each directory
func (v *PathVec) Unique() *PathVec {
	seen := make(map[string]struct{}, len(v.paths))
	out := &PathVec{}
	for _, p := range v.paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out.paths = append(out.paths, p)
	}
	return out
}

// WithoutVersionManagers returns a copy without pyenv and rbenv shim directories
func (v *PathVec) WithoutVersionManagers() *PathVec {
	out := &PathVec{}
	for _, p := range v.paths {
		if !isShim(p) {
			out.paths = append(out.paths, p)
		}
	}
	return out
}

func isShim(p string) bool {
	clean := filepath.ToSlash(filepath.Clean(p))
	for _, shim := range versionManagerShims {
		if clean == shim || strings.HasSuffix(clean, "/"+shim) {
			return true
		}
	}
	return false
}

// Join deduplicates and joins the directories with the OS list separator
func (v *PathVec) Join() string {
	return strings.Join(v.Unique().paths, string(os.PathListSeparator))
}

// String implements fmt.Stringer
func (v *PathVec) String() string {
	return v.Join()
}
