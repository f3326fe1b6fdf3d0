package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/kovak/internal/message"
)

func newRestoreCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "restore <text>",
		Short: "Copy a recorded entry back onto the system clipboard",
		Long: `Writes the entry whose display text matches <text> back onto the system
clipboard in its original form: image entries as image data, URL lists as
URL references, text as text. Text that matches nothing in the history is
copied as-is, so every row is always restorable.`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, args []string) error {
			return runRestore(v, strings.Join(args, " "))
		},
	}

	addConfigFlag(cmd)
	return cmd
}

func runRestore(_ *viper.Viper, text string) error {
	if _, err := daemonRequest(&message.Message{
		Type: message.TypeRestore,
		Text: text,
	}); err != nil {
		return err
	}
	fmt.Println("Copied to clipboard.")
	return nil
}
