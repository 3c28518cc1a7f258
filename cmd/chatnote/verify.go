// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/chatnote/internal/evernote"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify your Evernote connection and credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		flagToken, _ := cmd.Flags().GetString("token")
		flagSandbox, _ := cmd.Flags().GetBool("sandbox")
		cfg, err := evernoteConfig(flagToken, flagSandbox)
		if err != nil {
			return err
		}

		env := "production"
		if cfg.Sandbox {
			env = "sandbox"
		}
		fmt.Printf("Verifying connection to Evernote (%s)...\n", env)

		client := evernote.New(cfg)
		ctx := context.Background()

		user, err := client.GetUser(ctx)
		if err != nil {
			return fmt.Errorf("connection failed: %w", err)
		}

		notebooks, err := client.ListNotebooks(ctx)
		if err != nil {
			return fmt.Errorf("connection failed: %w", err)
		}

		fmt.Println("\nConnection successful!")
		fmt.Printf("  Username: %s\n", user.Username)
		fmt.Printf("  Email: %s\n", user.Email)
		fmt.Printf("  Notebooks: %d\n", len(notebooks))
		return nil
	},
}

func init() {
	verifyCmd.Flags().String("token", "", "Evernote developer token")
	verifyCmd.Flags().Bool("sandbox", false, "use the Evernote sandbox environment")

	rootCmd.AddCommand(verifyCmd)
}
