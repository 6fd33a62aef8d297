package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client sends one message within a persistent chat session and returns
// the model's text reply. Session continuity across calls is the
// provider's responsibility, keyed by the configured session id.
type Client interface {
	Send(ctx context.Context, message string) (string, error)
}

// ChatConfig holds the settings for one chat session.
type ChatConfig struct {
	APIKey       string
	BaseURL      string // provider root, e.g. https://api.openai.com/v1
	Model        string
	SessionID    string
	SystemPrompt string
}

// ChatClient talks to an OpenAI-compatible chat-completions endpoint.
type ChatClient struct {
	cfg        ChatConfig
	httpClient *http.Client
}

const defaultBaseURL = "https://api.openai.com/v1"

// NewChatClient builds a client for the given session. The HTTP client
// carries no explicit timeout; callers bound requests via ctx if they
// need to.
func NewChatClient(cfg ChatConfig) *ChatClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &ChatClient{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	User     string        `json:"user,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Send posts one user message and returns the completion text.
func (c *ChatClient) Send(ctx context.Context, message string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", errors.New("ai: api key not configured")
	}

	payload := chatRequest{
		Model: c.cfg.Model,
		User:  c.cfg.SessionID,
	}
	if c.cfg.SystemPrompt != "" {
		payload.Messages = append(payload.Messages, chatMessage{Role: "system", Content: c.cfg.SystemPrompt})
	}
	payload.Messages = append(payload.Messages, chatMessage{Role: "user", Content: message})

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("chat completion failed: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion failed: status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
