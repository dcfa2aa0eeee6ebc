package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	contactOverride string
	verbose         bool
	version         = "dev"
)

// SetVersion sets version information from ldflags.
func SetVersion(v string) { version = v }

var rootCmd = &cobra.Command{
	Use:   "imsg [contact-name]",
	Short: "Send and receive iMessages in the terminal",
	Long: `imsg is a terminal client for Apple Messages. A bare invocation opens a
chat with the saved default contact; pass a saved contact name to chat
with that contact instead. Message history is read from the local
Messages database and outbound texts are delivered through Messages.app.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runChat,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			fmt.Printf("imsg v%s\n", version)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&contactOverride, "contact", "c", "", "Override the contact identifier (phone number or email) for this run")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show contact resolution details")
}

// Execute runs the root command.
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("imsg {{.Version}}\n")
	return rootCmd.Execute()
}

func runChat(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	return chatWithContact(name)
}
