package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrMessageRequired = errors.New("message is required")

const chatModel = "gemini-2.0-flash"

const chatPrompt = `You are a concise AI assistant who provides brief, direct answers.
Keep responses under 3 sentences whenever possible.
Avoid lengthy explanations, excessive details, or unnecessary examples.
Answer clearly and to the point, like a helpful chatbot.`

// ChatService is a stateless passthrough to the generative-language
// API. It holds no state beyond the upstream client and credentials.
type ChatService struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewChatService creates a new ChatService. A nil client gets a default
// with a 30s timeout; an empty baseURL targets the production API.
func NewChatService(client *http.Client, baseURL, apiKey string) *ChatService {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	return &ChatService{client: client, baseURL: baseURL, apiKey: apiKey}
}

type chatContent struct {
	Parts []chatPart `json:"parts"`
}

type chatPart struct {
	Text string `json:"text"`
}

type generateContentRequest struct {
	Contents []chatContent `json:"contents"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content chatContent `json:"content"`
	} `json:"candidates"`
}

// Send forwards a user message to the model and returns its reply.
func (s *ChatService) Send(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrMessageRequired
	}

	payload := generateContentRequest{
		Contents: []chatContent{{
			Parts: []chatPart{{Text: chatPrompt + "\n\nUser query: " + message}},
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		s.baseURL, chatModel, url.QueryEscape(s.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generative API returned status %d", resp.StatusCode)
	}

	var out generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response from model")
	}

	return out.Candidates[0].Content.Parts[0].Text, nil
}
