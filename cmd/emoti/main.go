// Emoti copies a predefined snippet to the clipboard.
//
// It reads snippet mappings from $XDG_CONFIG_HOME/emoti/config.yaml, shows
// them in rofi (or a terminal list when rofi is unavailable) and copies the
// chosen value to the system clipboard.
//
// Usage:
//
//	emoti [command] [flags]
//
// Running without arguments opens the picker.
// See 'emoti --help' for available commands.
package main

import (
	"os"

	"github.com/muurk/emoti/internal/ui"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		ui.NewPrinter(os.Stderr, isTerminal(os.Stderr)).PrintError(err)
		os.Exit(1)
	}
}
