// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/chatnote/internal/evernote"
	"github.com/pdiddy/chatnote/internal/history"
	"github.com/pdiddy/chatnote/internal/transcript"
	"github.com/pdiddy/chatnote/pkg/types"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a Claude chat to Evernote",
	Long: `Save converts a chat transcript to ENML and creates an Evernote note
from it. Content can come from a file (--file), piped input, or interactive
input (paste, then Ctrl+D).

Transcripts may start with YAML front matter carrying title, notebook, and
tags; flags take precedence over front matter.

Examples:
  chatnote save --file chat.md --title "My Chat"
  cat conversation.md | chatnote save -n "Claude Chats"
  chatnote save -t "Quick Note" -g claude -g ai`,
	RunE: runSave,
}

func init() {
	saveCmd.Flags().StringP("title", "t", "", "title for the note (auto-generated if not provided)")
	saveCmd.Flags().StringP("notebook", "n", "", "target notebook name")
	saveCmd.Flags().StringArrayP("tags", "g", nil, "tags to apply (can be used multiple times)")
	saveCmd.Flags().StringP("file", "f", "", "input file containing chat content")
	saveCmd.Flags().String("token", "", "Evernote developer token")
	saveCmd.Flags().Bool("sandbox", false, "use the Evernote sandbox environment")

	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	inputFile, _ := cmd.Flags().GetString("file")
	content, err := readContent(inputFile)
	if err != nil {
		return err
	}

	meta, body := transcript.Parse(content)
	if transcript.IsEmpty(body) {
		return fmt.Errorf("no content provided")
	}

	title, _ := cmd.Flags().GetString("title")
	if title == "" {
		title = meta.Title
	}
	if title == "" {
		// Resolve the auto-generated title here so the history record
		// matches the created note.
		title = transcript.DefaultTitle(time.Now())
	}
	notebookFlag, _ := cmd.Flags().GetString("notebook")
	if notebookFlag == "" {
		notebookFlag = meta.Notebook
	}
	tags, _ := cmd.Flags().GetStringArray("tags")
	if len(tags) == 0 {
		tags = meta.Tags
	}

	flagToken, _ := cmd.Flags().GetString("token")
	flagSandbox, _ := cmd.Flags().GetBool("sandbox")
	cfg, err := evernoteConfig(flagToken, flagSandbox)
	if err != nil {
		return err
	}
	notebook := resolveNotebook(notebookFlag)

	client := evernote.New(cfg)
	guid, err := client.SaveChat(context.Background(), evernote.SaveRequest{
		Content:  body,
		Title:    title,
		Notebook: notebook,
		Tags:     tags,
	})
	if err != nil {
		return err
	}

	fmt.Println("Note saved successfully!")
	fmt.Printf("  GUID: %s\n", guid)
	if notebook != "" {
		fmt.Printf("  Notebook: %s\n", notebook)
	}

	recordSave(types.HistoryEntry{
		GUID:     guid,
		Title:    title,
		Notebook: notebook,
		Tags:     tags,
		Sandbox:  cfg.Sandbox,
	})
	return nil
}

// readContent reads the chat transcript from a file, a pipe, or interactive
// stdin, in that order of preference.
func readContent(inputFile string) (string, error) {
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", inputFile, err)
		}
		return string(data), nil
	}

	if info, err := os.Stdin.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
		fmt.Println("Enter chat content (Ctrl+D when done):")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// recordSave appends the save to the local history database. Failures only
// warn; the note is already saved.
func recordSave(entry types.HistoryEntry) {
	if !viper.GetBool("history.enabled") {
		return
	}

	store, err := history.Open(viper.GetString("history.dir"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open history: %v\n", err)
		return
	}
	defer store.Close()

	if err := store.Record(context.Background(), entry); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record history: %v\n", err)
	}
}
