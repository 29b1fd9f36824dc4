package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/benboone2/Radia-AI-chat-UI/internal"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var oneShot string

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat in the active session",
	Long: `Start an interactive chat in the active session, or send a single
question with -m.

In the interactive prompt:
  /new              start a new session
  /sessions         list sessions
  /switch <id>      change the active session
  /rename <title>   rename the active session
  /quit             exit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		var service internal.AnswerService
		if cfg.Endpoint == "" {
			// Sending stays disabled; the session can still be browsed.
			fmt.Println(warnStyle().Sprintf("No endpoint configured. Set %s or add \"endpoint\" to your config file.", internal.EndpointEnvVar))
		} else {
			service = internal.NewClient(cfg.Endpoint)
		}
		orch := internal.NewOrchestrator(store, service)

		if oneShot != "" {
			return runOneShot(cmd.Context(), orch, store)
		}
		return runREPL(cmd.Context(), orch, store)
	},
}

func warnStyle() *color.Color {
	return color.New(color.FgYellow, color.Bold)
}

func runOneShot(ctx context.Context, orch *internal.Orchestrator, store *internal.Store) error {
	sess := store.ActiveSession()
	before := len(sess.Messages)
	if !orch.Send(ctx, oneShot) {
		return fmt.Errorf("nothing sent: check the question and the endpoint configuration")
	}
	for _, msg := range sess.Messages[before:] {
		if msg.Role == internal.RoleAssistant {
			fmt.Println(msg.Text)
		}
	}
	return nil
}

func runREPL(ctx context.Context, orch *internal.Orchestrator, store *internal.Store) error {
	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	sess := store.ActiveSession()
	fmt.Printf("%s %s\n", boldGreen("💬 Radia"), dim("— session: "+sess.Title))
	fmt.Println(dim("Type your message and press Enter. /quit to exit, /new /sessions /switch /rename."))
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	buf := make([]byte, 1024*1024)
	scanner.Buffer(buf, len(buf))

	for {
		fmt.Print(boldGreen("You: "))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if quit := runSlashCommand(store, line); quit {
				break
			}
			continue
		}

		sess := store.ActiveSession()
		before := len(sess.Messages)
		if !orch.Send(ctx, line) {
			fmt.Println(warnStyle().Sprint("Not sent: no endpoint configured."))
			continue
		}

		for _, msg := range sess.Messages[before:] {
			if msg.Role == internal.RoleAssistant {
				fmt.Printf("%s %s\n\n", boldCyan("Assistant:"), msg.Text)
			}
		}
	}

	return scanner.Err()
}

// runSlashCommand handles in-REPL session commands. Returns true on /quit.
func runSlashCommand(store *internal.Store, line string) bool {
	fields := strings.Fields(line)
	arg := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))

	switch fields[0] {
	case "/quit", "/exit":
		return true
	case "/new":
		sess := store.CreateSession()
		fmt.Printf("Started session %s\n", sess.ID)
	case "/sessions":
		displaySessions(store)
	case "/switch":
		if arg == "" {
			fmt.Println("Usage: /switch <session-id>")
			break
		}
		store.SelectSession(arg)
		fmt.Printf("Active session: %s\n", store.ActiveSession().Title)
	case "/rename":
		if arg == "" {
			fmt.Println("Usage: /rename <title>")
			break
		}
		sess := store.ActiveSession()
		store.RenameSession(sess.ID, arg)
		fmt.Printf("Session is now %q\n", sess.Title)
	default:
		fmt.Printf("Unknown command %s\n", fields[0])
	}
	return false
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().StringVarP(&oneShot, "message", "m", "", "Send a single question and print the answer")
}
