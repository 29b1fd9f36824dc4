package cmd

import (
	"fmt"
	"os"

	"github.com/benboone2/Radia-AI-chat-UI/internal"
	"github.com/benboone2/Radia-AI-chat-UI/internal/export"
	"github.com/spf13/cobra"
)

var (
	format     string
	outputPath string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [session-id]",
	Short: "Export a session to file",
	Long: `Export a chat session in various formats (jsonl, md, yaml, json).

With no id, exports the active session. Use 'radia list' to see available
session IDs. Output goes to stdout unless --output is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		sess := store.ActiveSession()
		if len(args) == 1 {
			sess = store.Get(args[0])
			if sess == nil {
				return fmt.Errorf("no session with id %s", args[0])
			}
		}

		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		if outputPath == "" {
			return exporter.Export(sess, cmd.OutOrStdout())
		}

		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				internal.LogWarn("failed to close output file: %v", err)
			}
		}()

		if err := exporter.Export(sess, f); err != nil {
			return fmt.Errorf("failed to export session: %w", err)
		}
		internal.LogInfo("Exported session %s to %s", sess.ID, outputPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&format, "format", "f", "json", "Export format (jsonl, md, yaml, json)")
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default stdout)")
}
