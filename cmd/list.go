package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/benboone2/Radia-AI-chat-UI/internal"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List chat sessions",
	Long:  `List all chat sessions with the active one marked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		displaySessions(store)
		return nil
	},
}

func displaySessions(store *internal.Store) {
	sessions := store.Sessions()
	active := store.ActiveSession()

	header := headerStyle.Render(fmt.Sprintf("📋 %d session(s)", len(sessions)))
	fmt.Println(header)
	fmt.Println()

	// Use tabwriter for aligned columns with better spacing
	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)

	_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Title")+"\t"+titleStyle.Render("Messages")+"\t"+titleStyle.Render("Created")+"\t"+titleStyle.Render("Active")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 100))

	for _, sess := range sessions {
		title := sess.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		title = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Render(title)

		msgCount := countStyle.Render(strconv.Itoa(len(sess.Messages)))
		created := dateStyle.Render(formatCreatedAt(sess.CreatedAt))

		// Show short ID (first 8 chars) for readability
		shortID := sess.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		id := idStyle.Render(shortID)

		marker := ""
		if active != nil && sess.ID == active.ID {
			marker = activeStyle.Render("●")
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n", id, title, msgCount, created, marker)
	}

	_ = w.Flush()
	fmt.Println()
	if len(sessions) > 0 {
		fmt.Println(idStyle.Render("💡 Tip: Use the full ID (e.g., ") +
			lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Render(sessions[0].ID) +
			idStyle.Render(") with `radia switch <id>`"))
	}
}

func formatCreatedAt(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	diff := time.Since(t)
	switch {
	case diff < 24*time.Hour:
		return t.Format("Today 15:04")
	case diff < 7*24*time.Hour:
		return t.Format("Mon 15:04")
	case diff < 365*24*time.Hour:
		return t.Format("Jan 02 15:04")
	default:
		return t.Format("2006-01-02")
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
