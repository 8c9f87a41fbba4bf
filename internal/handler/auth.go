package handler

import (
	"errors"
	"net/http"

	"github.com/focusflow/focusflow-go/internal/model"
	"github.com/focusflow/focusflow-go/internal/service"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /api/user/register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAllFieldsRequired):
			writeJSON(w, http.StatusBadRequest, messageResponse("All fields are required"))
		case errors.Is(err, service.ErrUserExists):
			// Duplicate email is a conflict, but the wire contract
			// reports it as 400 like any other rejected registration.
			writeJSON(w, http.StatusBadRequest, messageResponse("User already exists"))
		default:
			writeJSON(w, http.StatusInternalServerError, messageResponse("Server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, model.RegisterResponse{
		Message: "User registered successfully",
		Token:   token,
	})
}

// HandleLogin handles POST /api/user/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, user, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAllFieldsRequired):
			writeJSON(w, http.StatusBadRequest, messageResponse("All fields are required"))
		case errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusBadRequest, messageResponse("User does not exist"))
		case errors.Is(err, service.ErrInvalidCredentials):
			writeJSON(w, http.StatusBadRequest, messageResponse("Invalid credentials"))
		default:
			writeJSON(w, http.StatusInternalServerError, messageResponse("Server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, model.LoginResponse{
		Message: "User logged in successfully",
		Token:   token,
		User:    user,
	})
}
