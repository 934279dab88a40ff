// Package entrypoint prepares the shell environment and replaces the nmk
// process with tmux or a zsh login shell.
//
// A run goes through these steps:
//
//  1. locate the dotfiles home
//  2. rewrite PATH and LD_LIBRARY_PATH
//  3. export the dotfiles variables (NMK_HOME, ZDOTDIR, VIMINIT, EDITOR,
//     NMK_ZSH_GLOBAL_RCS, NMK_INITIALIZED)
//  4. exec zsh in login mode, or detect tmux, render its configuration into
//     a temporary file and exec tmux
//
// Host access goes through Deps so every step can be exercised in tests
// without touching the real environment.
package entrypoint
