// kovak: clipboard history for the desktop.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "kovak",
		Short: "Clipboard history daemon",
		Long: `kovak watches the system clipboard and records everything you copy:
text, URL lists, and images. Entries land in an in-memory history. A global hotkey
(default shift+space) toggles the history window; any recorded entry can be
copied back onto the clipboard.

Run "kovak run" to start the daemon. The other sub-commands (history,
search, restore, clear, toggle, hotkey, status) talk to the running daemon
over a local socket.

Config file search order (first found wins):
  /etc/kovak/kovak.toml
  $HOME/.config/kovak/kovak.toml
  path supplied via --config

All flags can be set via KOVAK_<FLAG> env vars or config-file keys.
The hotkey itself lives in <home>/Kovak/settings.json and is changed with
"kovak hotkey".`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newRunCmd(),
		newHistoryCmd(),
		newSearchCmd(),
		newRestoreCmd(),
		newClearCmd(),
		newToggleCmd(),
		newHotkeyCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("kovak %s\n", Version)
		},
	}
}
