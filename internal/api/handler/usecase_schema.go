package handler

import "time"

// errorResponse mirrors the envelope rendered by the central error handler.
// Declared here so the JSON contract is visible next to the request types.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// --- Request / Response types ---

type createUseCaseRequest struct {
	Title        string `json:"title"         validate:"required,max=200"`
	Description  string `json:"description"   validate:"max=4000"`
	BusinessArea string `json:"business_area" validate:"max=100"`
}

type updateUseCaseRequest struct {
	Title        string `json:"title"         validate:"required,max=200"`
	Description  string `json:"description"   validate:"max=4000"`
	BusinessArea string `json:"business_area" validate:"max=100"`
	Status       string `json:"status"        validate:"required,oneof=draft in_review approved archived"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// changes.

type useCaseResponse struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	BusinessArea string    `json:"business_area"`
	Status       string    `json:"status"`
	OwnerID      uint      `json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type listUseCasesResponse struct {
	Items   []useCaseResponse `json:"items"`
	Total   int64             `json:"total"`
	Page    int               `json:"page"`
	PerPage int               `json:"per_page"`
}
