package cmd

import (
	"fmt"

	"github.com/benboone2/Radia-AI-chat-UI/internal"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	// Styles for show command
	sessionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1).
				MarginBottom(1)

	sessionMetaStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				MarginBottom(1)

	userMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true).
				Padding(0, 1)

	assistantMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("135")).
				Bold(true).
				Padding(0, 1)

	messageContentStyle = lipgloss.NewStyle().
				Padding(0, 2).
				MarginBottom(1)
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show a session transcript",
	Long:  `Display the messages of a session. With no id, shows the active session.`,
	Args:  cobra.MaximumNArgs(1),
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

		displayTranscript(sess)
		return nil
	},
}

func displayTranscript(sess *internal.Session) {
	fmt.Println(sessionHeaderStyle.Render("💬 " + sess.Title))
	fmt.Println(sessionMetaStyle.Render(fmt.Sprintf("id: %s · %d message(s) · created %s",
		sess.ID, len(sess.Messages), formatCreatedAt(sess.CreatedAt))))

	if len(sess.Messages) == 0 {
		fmt.Println(messageContentStyle.Render("(no messages yet)"))
		return
	}

	for _, msg := range sess.Messages {
		switch msg.Role {
		case internal.RoleUser:
			fmt.Println(userMessageStyle.Render("You"))
		case internal.RoleAssistant:
			fmt.Println(assistantMessageStyle.Render("Assistant"))
		default:
			fmt.Println(sessionMetaStyle.Render(string(msg.Role)))
		}
		fmt.Println(messageContentStyle.Render(msg.Text))
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
