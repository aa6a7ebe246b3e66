package dto

import "medequip-support-be/pkg/store"

type CreateSessionResponse struct {
	SessionId string `json:"session_id"`
}

type SendChatRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type SendChatResponse struct {
	SessionId string `json:"session_id"`
	Reply     string `json:"reply"`
}

// AuthRequest sets or clears the session identity. Both fields empty means
// clear; otherwise both are required for the lookup.
type AuthRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Email     string `json:"email"`
	ClientId  string `json:"client_id"`
}

type AuthResponse struct {
	Authenticated bool            `json:"authenticated"`
	Identity      *store.Identity `json:"identity,omitempty"`
	Message       string          `json:"message"`
}

type GetHistoryResponse struct {
	SessionId string                   `json:"session_id"`
	Turns     []store.ConversationTurn `json:"turns"`
}
