package cmd

import "github.com/spf13/cobra"

var messageCmd = &cobra.Command{
	Use:   "message [contact-name]",
	Short: "Open a chat with a contact",
	Long: `Open a chat with the saved default contact, a named contact, or the
identifier given with --contact. This is the same as a bare invocation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(messageCmd)
}
