package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/benboone2/Radia-AI-chat-UI/internal"
)

// MarkdownExporter exports sessions in Markdown format
type MarkdownExporter struct{}

// Export exports a session to Markdown format
func (e *MarkdownExporter) Export(session *internal.Session, w io.Writer) error {
	// Header
	_, _ = fmt.Fprintf(w, "# %s\n\n", session.Title)

	_, _ = fmt.Fprintf(w, "**Session:** %s  \n", session.ID)
	if !session.CreatedAt.IsZero() {
		_, _ = fmt.Fprintf(w, "**Created:** %s  \n", session.CreatedAt.Format("2006-01-02 15:04"))
	}
	_, _ = fmt.Fprintf(w, "**Messages:** %d\n\n", len(session.Messages))

	_, _ = fmt.Fprintf(w, "---\n\n")

	// Messages
	for i, msg := range session.Messages {
		content := escapeMarkdown(msg.Text)

		_, _ = fmt.Fprintf(w, "**%s:**\n\n%s\n\n", msg.Role, content)

		// Horizontal rule after each message (except the last one)
		if i < len(session.Messages)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// escapeMarkdown escapes markdown special characters outside code blocks
func escapeMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	var result []string
	inCodeBlock := false

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCodeBlock = !inCodeBlock
			result = append(result, line)
		} else if inCodeBlock {
			result = append(result, line)
		} else {
			line = strings.ReplaceAll(line, "**", "\\*\\*")
			line = strings.ReplaceAll(line, "__", "\\_\\_")
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
