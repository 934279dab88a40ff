// Package terminal decides whether the attached terminal supports 256 colours.
package terminal

import "slices"

const (
	Term256Color = "screen-256color"
	Term8Color   = "screen"
)

// DefaultTerms are $TERM values known to support 256 colours
var DefaultTerms = []string{
	"cygwin",
	"gnome-256color",
	"putty",
	"screen-256color",
	"xterm-256color",
}

// DefaultColorterms are $COLORTERM values known to support 256 colours
var DefaultColorterms = []string{"gnome-terminal", "rxvt-xpm", "xfce4-terminal"}

// Detector matches terminal environment values against known lists
type Detector struct {
	Terms      []string
	Colorterms []string
}

// NewDetector returns a detector using the given lists, falling back to the defaults
func NewDetector(terms, colorterms []string) *Detector {
	if len(terms) == 0 {
		terms = DefaultTerms
	}
	if len(colorterms) == 0 {
		colorterms = DefaultColorterms
	}
	return &Detector{Terms: terms, Colorterms: colorterms}
}

// Is256ColorTerm reports whether term is a known 256 colour $TERM value
func (d *Detector) Is256ColorTerm(term string) bool {
	return term != "" && slices.Contains(d.Terms, term)
}

// Is256ColorColorterm reports whether colorterm is a known 256 colour $COLORTERM value
func (d *Detector) Is256ColorColorterm(colorterm string) bool {
	return colorterm != "" && slices.Contains(d.Colorterms, colorterm)
}

// Support256Color combines $TERM, $COLORTERM and container detection.
// Containers are assumed to be reached from a modern terminal.
func (d *Detector) Support256Color(getenv func(string) string, containerized bool) bool {
	return d.Is256ColorTerm(getenv("TERM")) ||
		d.Is256ColorColorterm(getenv("COLORTERM")) ||
		containerized
}

// DefaultTerm returns the tmux default-terminal for the colour support
func DefaultTerm(support256 bool) string {
	if support256 {
		return Term256Color
	}
	return Term8Color
}
