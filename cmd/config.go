package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imsgtui/imsg/internal/contacts"
	"github.com/imsgtui/imsg/internal/paths"
	"github.com/imsgtui/imsg/internal/phone"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the default contact configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the path to the configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Configuration file location:")
		fmt.Println(paths.ConfigFile())
		return nil
	},
}

var configSetContactCmd = &cobra.Command{
	Use:   "set-contact IDENTIFIER",
	Short: "Save the default contact identifier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := contacts.Load(paths.ConfigFile())
		if err != nil {
			return err
		}
		formatted := phone.Normalize(args[0])
		dir.DefaultContact = formatted
		if err := contacts.Save(paths.ConfigFile(), dir); err != nil {
			return err
		}
		fmt.Printf("Saved default contact: %s\n", formatted)
		return nil
	},
}

var configSetNameCmd = &cobra.Command{
	Use:   "set-name NAME",
	Short: "Save the display name for the default contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := contacts.Load(paths.ConfigFile())
		if err != nil {
			return err
		}
		dir.DefaultDisplayName = args[0]
		if err := contacts.Save(paths.ConfigFile(), dir); err != nil {
			return err
		}
		fmt.Printf("Saved default display name: %s\n", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetContactCmd)
	configCmd.AddCommand(configSetNameCmd)
	rootCmd.AddCommand(configCmd)
}
