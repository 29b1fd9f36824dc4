package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// renameCmd represents the rename command
var renameCmd = &cobra.Command{
	Use:   "rename <session-id> <title>",
	Short: "Rename a session",
	Long:  `Set a new title for a session. An empty title leaves the current one in place.`,
	Args:  cobra.MinimumNArgs(2),
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

		store.RenameSession(id, strings.Join(args[1:], " "))
		fmt.Printf("Renamed session %s to %q\n", id, sess.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
