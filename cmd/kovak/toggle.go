package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/kovak/internal/message"
)

func newToggleCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Toggle window visibility",
		Long: `Fires the same visibility-toggle event as the global hotkey. Useful on
hosts where the OS keyboard hook is unavailable (some Wayland compositors,
headless X forwarding) or when scripting.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, _ []string) error {
			resp, err := daemonRequest(&message.Message{Type: message.TypeToggle})
			if err != nil {
				return err
			}
			fmt.Println(resp.Info)
			return nil
		},
	}

	addConfigFlag(cmd)
	return cmd
}
