package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/kovak/internal/message"
)

func newHotkeyCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "hotkey <combo>",
		Short: "Change the global show/hide hotkey",
		Long: `Changes the global hotkey, e.g. "shift+space" or "ctrl+alt+v".

The new combination is validated before the old one is released: an invalid
combo leaves the current hotkey active. On success the new hotkey is
persisted to the settings file. Setting the hotkey that is already active
is reported as informational, not an error.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, args []string) error {
			return runHotkey(v, args[0])
		},
	}

	addConfigFlag(cmd)
	return cmd
}

func runHotkey(_ *viper.Viper, combo string) error {
	resp, err := daemonRequest(&message.Message{
		Type:   message.TypeHotkey,
		Hotkey: combo,
	})
	if err != nil {
		return err
	}
	if resp.Type == message.TypeInfo {
		fmt.Println(resp.Info)
		return nil
	}
	fmt.Printf("Hotkey set to %s.\n", combo)
	return nil
}
