package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// switchCmd represents the switch command
var switchCmd = &cobra.Command{
	Use:   "switch <session-id>",
	Short: "Change the active session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		id := args[0]
		sess := store.Get(id)
		if sess == nil {
			return fmt.Errorf("no session with id %s", id)
		}

		store.SelectSession(id)
		fmt.Printf("Active session is now %s (%s)\n", sess.ID, sess.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(switchCmd)
}
