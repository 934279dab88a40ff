package tmux

import (
	"fmt"
	"io"
	"strings"
)

const markerWidth = 100

// lineWriter remembers the first write error and drops every later write
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) line(s string) {
	if lw.err != nil {
		return
	}
	_, lw.err = io.WriteString(lw.w, s+"\n")
}

func (lw *lineWriter) linef(format string, args ...interface{}) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format+"\n", args...)
}

func (lw *lineWriter) raw(s string) {
	if lw.err != nil {
		return
	}
	_, lw.err = io.WriteString(lw.w, s)
}

type sectionBody func(w *lineWriter, c *Context)

// Render writes the tmux configuration for version v to w.
// The first write error stops rendering and is returned unchanged.
func Render(w io.Writer, c *Context, v Version) error {
	lw := &lineWriter{w: w}

	lw.linef("# tmux %s configuration", v)
	section(lw, c, "tmux options", options)
	section(lw, c, "prefix keys", prefixKeys)
	lw.line("bind-key C-c command-prompt")
	lw.linef("bind-key C-l %s", lastSession)
	lw.line("bind-key C-t display-message '#{pane_tty}'")
	section(lw, c, "function key binding", func(w *lineWriter, c *Context) {
		functionKeys(w, v)
	})
	section(lw, c, "F12 Key table", f12KeyTable)
	section(lw, c, "Pane current path", paneCurrentPath)
	section(lw, c, "Copy mode", copyMode)
	section(lw, c, "colors", colors)

	return lw.err
}

func section(w *lineWriter, c *Context, name string, body sectionBody) {
	w.line(startMarker(name))
	body(w, c)
	w.line(endMarker(name))
}

func startMarker(name string) string {
	return "# " + center(" start "+name+" ", markerWidth, '-')
}

func endMarker(name string) string {
	return "# " + center(" end "+name+" ", markerWidth, '-')
}

// center pads s with fill on both sides to width; odd padding goes right
func center(s string, width int, fill rune) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	pad := width - n
	left := pad / 2
	f := string(fill)
	return strings.Repeat(f, left) + s + strings.Repeat(f, pad-left)
}
