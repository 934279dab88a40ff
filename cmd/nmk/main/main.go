package main

import (
	"fmt"
	"os"

	"github.com/nmk-dotfiles/nmk/cmd/nmk"
	"github.com/nmk-dotfiles/nmk/pkg/ui/styles"
)

func main() {
	rootCmd := nmk.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Render("Error", fmt.Sprintf("nmk: %v", err)))
		os.Exit(1)
	}
}
