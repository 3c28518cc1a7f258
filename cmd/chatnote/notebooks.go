// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/chatnote/internal/evernote"
)

var notebooksCmd = &cobra.Command{
	Use:   "notebooks",
	Short: "List all notebooks in your Evernote account",
	RunE: func(cmd *cobra.Command, args []string) error {
		flagToken, _ := cmd.Flags().GetString("token")
		flagSandbox, _ := cmd.Flags().GetBool("sandbox")
		cfg, err := evernoteConfig(flagToken, flagSandbox)
		if err != nil {
			return err
		}

		client := evernote.New(cfg)
		notebooks, err := client.ListNotebooks(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("Found %d notebooks:\n\n", len(notebooks))
		for _, nb := range notebooks {
			marker := ""
			if nb.DefaultNotebook {
				marker = " (default)"
			}
			fmt.Printf("  - %s%s\n", nb.Name, marker)
		}
		return nil
	},
}

func init() {
	notebooksCmd.Flags().String("token", "", "Evernote developer token")
	notebooksCmd.Flags().Bool("sandbox", false, "use the Evernote sandbox environment")

	rootCmd.AddCommand(notebooksCmd)
}
