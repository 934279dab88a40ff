// Package paths locates the nmk dotfiles home and the directories inside it.
//
// The home is taken from NMK_HOME when it is set and resolves to an existing
// directory, otherwise it defaults to ~/.nmk. The resolved path is absolute
// because it is exported to the vendored zsh, which requires absolute paths.
//
// # Layout
//
//	$NMK_HOME/
//	  bin/            nmk helper scripts
//	  vendor/bin/     vendored tmux and zsh
//	  vendor/lib/     shared libraries for the vendored binaries
//	  zsh/            ZDOTDIR
//	  vim/            init.vim
//	  tmux/           tmux history
//	  nmk.toml        optional user configuration
package paths
