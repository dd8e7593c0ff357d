package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newImportWordsCommand() *cobra.Command {
	var userID string

	command := &cobra.Command{
		Use:   "import-words <file.xlsx>",
		Short: "Import vocabulary from a spreadsheet (english, arabic, optional created_at)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer file.Close()

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.usecases.Word.Import(cmd.Context(), userID, file)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printProblems(out, result.Errors)
			color.New(color.FgGreen).Fprintf(out, "Imported %d words (%d skipped)\n", result.Imported, result.Skipped)
			return nil
		},
	}
	command.Flags().StringVar(&userID, "user", "", "owner user id")
	_ = command.MarkFlagRequired("user")
	return command
}

func newImportChatCommand() *cobra.Command {
	var (
		userID    string
		sessionID string
	)

	command := &cobra.Command{
		Use:   "import-chat <file.json>",
		Short: "Import a JSON array of stored chat messages in any legacy shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raws, err := readChatFile(args[0])
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.usecases.Chatbot.Import(cmd.Context(), userID, sessionID, raws)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printProblems(out, result.Errors)
			color.New(color.FgGreen).Fprintf(out, "Imported %d messages\n", result.Imported)
			return nil
		},
	}
	command.Flags().StringVar(&userID, "user", "", "owner user id")
	command.Flags().StringVar(&sessionID, "session", "", "session id (a new one is generated when empty)")
	_ = command.MarkFlagRequired("user")
	return command
}

func readChatFile(path string) ([][]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%s must contain a JSON array: %w", path, err)
	}

	raws := make([][]byte, 0, len(items))
	for _, item := range items {
		raws = append(raws, item)
	}
	return raws, nil
}

func printProblems(out io.Writer, problems []string) {
	warn := color.New(color.FgYellow)
	for _, p := range problems {
		warn.Fprintln(out, "skipped:", p)
	}
}
