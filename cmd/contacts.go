package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imsgtui/imsg/internal/contacts"
	"github.com/imsgtui/imsg/internal/paths"
	"github.com/imsgtui/imsg/internal/phone"
	"github.com/imsgtui/imsg/internal/tui"
)

var displayName string

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Manage saved contacts",
	Args:  cobra.NoArgs,
	// Bare "imsg contacts" opens the browser, same as "contacts list".
	RunE: runContactList,
}

var contactsAddCmd = &cobra.Command{
	Use:   "add NAME IDENTIFIER",
	Short: "Add or update a saved contact",
	Args:  cobra.ExactArgs(2),
	RunE:  runContactAdd,
}

var contactsRemoveCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Remove a saved contact",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactRemove,
}

var contactsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Browse saved contacts",
	Args:  cobra.NoArgs,
	RunE:  runContactList,
}

// Top-level add and remove are shorthands for the contacts subcommands.
var addCmd = &cobra.Command{
	Use:   "add NAME IDENTIFIER",
	Short: "Add or update a saved contact",
	Args:  cobra.ExactArgs(2),
	RunE:  runContactAdd,
}

var removeCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Remove a saved contact",
	Args:  cobra.ExactArgs(1),
	RunE:  runContactRemove,
}

func init() {
	contactsAddCmd.Flags().StringVarP(&displayName, "display-name", "d", "", "Display name shown in the chat title")
	addCmd.Flags().StringVarP(&displayName, "display-name", "d", "", "Display name shown in the chat title")

	contactsCmd.AddCommand(contactsAddCmd)
	contactsCmd.AddCommand(contactsRemoveCmd)
	contactsCmd.AddCommand(contactsListCmd)
	rootCmd.AddCommand(contactsCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
}

func runContactAdd(cmd *cobra.Command, args []string) error {
	name, identifier := args[0], args[1]
	dir, err := contacts.Load(paths.ConfigFile())
	if err != nil {
		return err
	}

	formatted := phone.Normalize(identifier)
	dir.Add(name, formatted, displayName)
	if err := contacts.Save(paths.ConfigFile(), dir); err != nil {
		return err
	}

	fmt.Printf("Added contact '%s' with identifier '%s'\n", name, formatted)
	if displayName != "" {
		fmt.Printf("Display name: %s\n", displayName)
	}
	return nil
}

func runContactRemove(cmd *cobra.Command, args []string) error {
	name := args[0]
	dir, err := contacts.Load(paths.ConfigFile())
	if err != nil {
		return err
	}

	matched, ok := dir.Remove(name)
	if !ok {
		fmt.Printf("Contact '%s' not found in configuration\n", name)
		return nil
	}
	if err := contacts.Save(paths.ConfigFile(), dir); err != nil {
		return err
	}

	if matched != name {
		fmt.Printf("Removed contact '%s' (matched '%s' case-insensitively)\n", matched, name)
	} else {
		fmt.Printf("Removed contact '%s'\n", name)
	}
	return nil
}

func runContactList(cmd *cobra.Command, args []string) error {
	dir, err := contacts.Load(paths.ConfigFile())
	if err != nil {
		return err
	}
	return tui.RunContacts(dir)
}
