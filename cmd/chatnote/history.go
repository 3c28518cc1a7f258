// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/chatnote/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently saved notes",
	Long: `History lists notes recently saved by chatnote, from the local save log.
The log is kept in a SQLite database under the history directory and never
contacts Evernote.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		store, err := history.Open(viper.GetString("history.dir"))
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.Recent(context.Background(), limit)
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}

		if len(entries) == 0 {
			fmt.Println("No saved notes yet.")
			return nil
		}
		for _, e := range entries {
			line := fmt.Sprintf("%s  %s", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Title)
			if e.Notebook != "" {
				line += fmt.Sprintf("  [%s]", e.Notebook)
			}
			if len(e.Tags) > 0 {
				line += "  #" + strings.Join(e.Tags, " #")
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of entries to show")
	historyCmd.Flags().Bool("json", false, "output entries as JSON")

	rootCmd.AddCommand(historyCmd)
}
