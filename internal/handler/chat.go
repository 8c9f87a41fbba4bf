package handler

import (
	"errors"
	"net/http"

	"github.com/focusflow/focusflow-go/internal/model"
	"github.com/focusflow/focusflow-go/internal/service"
)

// ChatHandler handles HTTP requests for the assistant passthrough.
type ChatHandler struct {
	service *service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// HandleChat handles POST /api/chatbot/chat requests.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if !decodeBody(w, r, &req) {
		return
	}

	reply, err := h.service.Send(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, service.ErrMessageRequired) {
			writeJSON(w, http.StatusBadRequest, messageResponse("Missing required fields"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, messageResponse("Failed to generate response"))
		return
	}

	writeJSON(w, http.StatusOK, model.ChatResponse{Response: reply})
}
