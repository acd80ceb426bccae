package domain

import (
	"errors"
	"time"
)

// UseCaseStatus represents the review lifecycle of an AI initiative record.
type UseCaseStatus string

const (
	StatusDraft    UseCaseStatus = "draft"
	StatusInReview UseCaseStatus = "in_review"
	StatusApproved UseCaseStatus = "approved"
	StatusArchived UseCaseStatus = "archived"
)

// validTransitions defines the allowed review state machine. Writing the same
// status back is always permitted and checked separately.
var validTransitions = map[UseCaseStatus][]UseCaseStatus{
	StatusDraft:    {StatusInReview},
	StatusInReview: {StatusApproved, StatusDraft},
	StatusApproved: {StatusArchived},
}

// CanTransition reports whether moving from one status to another is allowed.
func CanTransition(from, to UseCaseStatus) bool {
	if from == to {
		return true
	}
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UseCase is an AI initiative tracked through the review lifecycle.
type UseCase struct {
	ID           uint          `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	BusinessArea string        `json:"business_area"`
	Status       UseCaseStatus `json:"status"`
	OwnerID      uint          `json:"owner_id"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

var (
	ErrUseCaseNotFound   = errors.New("use case not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)
