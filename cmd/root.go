package cmd

import (
	"fmt"
	"os"

	"github.com/benboone2/Radia-AI-chat-UI/internal"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	dataPath   string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "radia",
	Short: "Chat with a remote answer service from your terminal",
	Long: `A terminal chat client for a remote answer-generation service.

Radia keeps multiple independent conversations, sends each question with
its conversational context, and stores everything locally so your
sessions survive restarts.

Quick Start:
  radia chat                  # Interactive chat in the active session
  radia chat -m "question"    # One-shot question
  radia list                  # List sessions
  radia switch <session-id>   # Change the active session
  radia export --format md    # Export the active session as Markdown

The answer service address comes from the ` + internal.EndpointEnvVar + ` environment
variable or the "endpoint" entry in ~/.radia/config.yaml.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Custom config file location")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Custom session database location")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
