// Package tmux turns a detected tmux release into a configuration file.
//
// Version is a closed, manually ordered list of supported releases. Point
// releases carry letter suffixes (2.9a, 3.1b), so versions are never
// compared numerically; the declaration order of the constants is the
// release order and integer comparison decides feature support.
//
// Render writes the configuration for a Version and a Context. It performs
// no I/O beyond writing to the supplied writer: shell paths, colour support,
// platform and clipboard availability are resolved by the caller and passed
// in through Context, so identical inputs always produce identical bytes.
package tmux
