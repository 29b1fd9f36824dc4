package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Create a new session and make it active",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		sess := store.CreateSession()
		if title := strings.TrimSpace(strings.Join(args, " ")); title != "" {
			store.RenameSession(sess.ID, title)
		}

		fmt.Printf("Created session %s (%s)\n", sess.ID, sess.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
