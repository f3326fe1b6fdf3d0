package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/kovak/internal/message"
)

func newClearCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the clipboard history",
		Long: `Empties the history and resets the poll baseline: whatever is on the
clipboard right now is treated as a fresh first observation and will not
re-appear as a history entry until it changes.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, _ []string) error {
			if _, err := daemonRequest(&message.Message{Type: message.TypeClear}); err != nil {
				return err
			}
			fmt.Println("History cleared.")
			return nil
		},
	}

	addConfigFlag(cmd)
	return cmd
}
