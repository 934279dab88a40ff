// Package config loads nmk settings.
//
// Values are layered, later sources winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file in the dotfiles home, nmk.toml or nmk.yaml
//  3. NMK_CFG_* environment variables
//  4. overrides supplied by the caller, usually command-line flags
package config
