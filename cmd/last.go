package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imsgtui/imsg/internal/contacts"
	"github.com/imsgtui/imsg/internal/history"
	"github.com/imsgtui/imsg/internal/paths"
)

var lastCmd = &cobra.Command{
	Use:   "last [contact-name]",
	Short: "Print the most recent incoming message from a contact",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLast,
}

func init() {
	rootCmd.AddCommand(lastCmd)
}

func runLast(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}

	dir, err := contacts.Load(paths.ConfigFile())
	if err != nil {
		return err
	}
	res, err := contacts.Resolve(dir, contactOverride, name)
	if err != nil {
		return err
	}
	if verbose {
		printResolution(res, name)
	}

	db, err := history.Open(paths.MessagesDB())
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	m, err := db.LastMessage(res.Identifier)
	if err != nil {
		return err
	}
	if m == nil {
		fmt.Printf("No messages from %s\n", res.DisplayName)
		return nil
	}
	fmt.Printf("%s: %s\n", m.Time.Format("15:04"), m.Content())
	return nil
}
