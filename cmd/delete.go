package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session",
	Long:  `Delete a session. The last remaining session cannot be deleted.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		id := args[0]
		if store.Get(id) == nil {
			return fmt.Errorf("no session with id %s", id)
		}
		if len(store.Sessions()) == 1 {
			fmt.Println("Not deleted: the last session must remain.")
			return nil
		}

		store.DeleteSession(id)
		fmt.Printf("Deleted session %s\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
