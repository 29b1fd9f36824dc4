package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// AnswerRequest is the outbound payload for one send.
type AnswerRequest struct {
	Input       string        `json:"input"`
	ChatHistory []HistoryTurn `json:"chat_history"`
}

// HistoryTurn is one prior (question, answer) exchange in the wire format
// the answer service expects.
type HistoryTurn struct {
	Inputs  TurnInputs  `json:"inputs"`
	Outputs TurnOutputs `json:"outputs"`
}

// TurnInputs carries the question side of a history turn.
type TurnInputs struct {
	ChatInput string `json:"chat_input"`
}

// TurnOutputs carries the answer side of a history turn.
type TurnOutputs struct {
	ChatOutput string `json:"chat_output"`
}

// maxErrorBodyLen bounds the response-body excerpt carried in a
// RequestError.
const maxErrorBodyLen = 200

// Client talks to the remote answer service.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client for the given endpoint.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 5 * time.Minute, // generations can be slow
		},
	}
}

// Ask sends one question with its conversational context and returns the
// answer text. Failures are typed: *TransportError when the service is
// unreachable, *RequestError on a non-2xx response.
func (c *Client) Ask(ctx context.Context, input string, history []Turn) (string, error) {
	req := AnswerRequest{
		Input:       input,
		ChatHistory: make([]HistoryTurn, len(history)),
	}
	for i, turn := range history {
		req.ChatHistory[i] = HistoryTurn{
			Inputs:  TurnInputs{ChatInput: turn.Question},
			Outputs: TurnOutputs{ChatOutput: turn.Answer},
		}
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &TransportError{Endpoint: c.endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Endpoint: c.endpoint, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt := string(body)
		if len(excerpt) > maxErrorBodyLen {
			excerpt = excerpt[:maxErrorBodyLen]
		}
		return "", &RequestError{Status: resp.StatusCode, Body: excerpt}
	}

	return extractAnswer(body), nil
}

// extractAnswer pulls the answer field out of a response body. A missing
// field, or a body that is not a JSON object at all, degrades to the raw
// payload text so contract drift stays visible instead of crashing.
func extractAnswer(body []byte) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return string(body)
	}

	raw, ok := payload["answer"]
	if !ok {
		return string(body)
	}

	var answer string
	if err := json.Unmarshal(raw, &answer); err == nil {
		return answer
	}
	// Non-string answer values are kept as their JSON text.
	return string(raw)
}
