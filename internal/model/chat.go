package model

// ChatRequest represents a chat message sent to the assistant.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse represents the assistant's reply.
type ChatResponse struct {
	Response string `json:"response"`
}
