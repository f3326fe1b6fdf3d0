package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/kovak/internal/message"
	"go.klb.dev/kovak/internal/view"
)

func newHistoryCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the recorded clipboard history",
		Long: `Prints the daemon's presentation rows in discovery order, oldest first.
Each entry is followed by a blank spacer row, matching the window layout.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runHistory(v) },
	}

	cmd.Flags().Bool("json", false, "output raw JSON")
	addConfigFlag(cmd)

	return cmd
}

func runHistory(v *viper.Viper) error {
	resp, err := daemonRequest(&message.Message{Type: message.TypeHistory})
	if err != nil {
		return err
	}

	if v.GetBool("json") {
		enc, _ := json.MarshalIndent(resp.Rows, "", "  ")
		fmt.Println(string(enc))
		return nil
	}

	if len(resp.Rows) == 0 {
		fmt.Println("History is empty.")
		return nil
	}
	printRows(resp.Rows)
	return nil
}

// printRows writes rows to stdout, prefixing matched rows with ">".
func printRows(rows []view.Row) {
	for _, r := range rows {
		marker := " "
		if r.Match {
			marker = ">"
		}
		fmt.Printf("%s %s\n", marker, r.Text)
	}
}
