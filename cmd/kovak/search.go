package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/kovak/internal/message"
)

func newSearchCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Highlight history rows matching a query",
		Long: `Marks every history row case-insensitively containing the query and
reports the first match (the row the window scrolls to). An empty query
matches every row. With --reset, clears all highlight marks instead.`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return runSearch(v, query)
		},
	}

	cmd.Flags().Bool("reset", false, "clear highlight marks")
	addConfigFlag(cmd)

	return cmd
}

func runSearch(v *viper.Viper, query string) error {
	if v.GetBool("reset") {
		_, err := daemonRequest(&message.Message{Type: message.TypeFindReset})
		return err
	}

	resp, err := daemonRequest(&message.Message{
		Type:  message.TypeSearch,
		Query: query,
	})
	if err != nil {
		return err
	}

	if resp.First < 0 {
		fmt.Println("No matches.")
		return nil
	}
	fmt.Printf("First match at row %d:\n", resp.First)
	printRows(resp.Rows)
	return nil
}
