package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// OpenAIConfig configures the OpenAI-compatible client.
type OpenAIConfig struct {
	// BaseURL is the API root, e.g. https://api.openai.com/v1 or any
	// compatible gateway.
	BaseURL string
	// APIKey is the bearer token.
	APIKey string
	// Model is the completion model name.
	Model string
	// Temperature controls sampling randomness.
	Temperature float64
	// Timeout bounds a single HTTP call.
	Timeout time.Duration
}

// OpenAI is a Completer backed by any OpenAI-compatible chat-completions API.
type OpenAI struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	client      *http.Client
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []chatMsg `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	Stream      bool      `json:"stream"`
}

type chatMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewOpenAI constructs an OpenAI-compatible chat client.
func NewOpenAI(cfg OpenAIConfig) *OpenAI {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &OpenAI{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:      strings.TrimSpace(cfg.APIKey),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		client:      &http.Client{Timeout: timeout},
	}
}

// Complete sends the conversation and returns the assistant reply.
func (o *OpenAI) Complete(ctx context.Context, msgs []Message) (string, error) {
	if o.apiKey == "" {
		return "", ErrNotConfigured
	}

	reqMsgs := make([]chatMsg, 0, len(msgs))
	for _, m := range msgs {
		reqMsgs = append(reqMsgs, chatMsg{Role: m.Role, Content: m.Content})
	}

	data, err := json.Marshal(chatRequest{
		Model:       o.model,
		Messages:    reqMsgs,
		Temperature: o.temperature,
		Stream:      false,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/chat/completions", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ai: request failed: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
