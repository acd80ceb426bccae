package handler

import (
	"github.com/aihub/usecase-hub/internal/core/domain"
	"github.com/aihub/usecase-hub/internal/core/ports"
)

// --- Service result → HTTP response ---

func toUseCaseResponse(uc *domain.UseCase) useCaseResponse {
	return useCaseResponse{
		ID:           uc.ID,
		Title:        uc.Title,
		Description:  uc.Description,
		BusinessArea: uc.BusinessArea,
		Status:       string(uc.Status),
		OwnerID:      uc.OwnerID,
		CreatedAt:    uc.CreatedAt.UTC(),
		UpdatedAt:    uc.UpdatedAt.UTC(),
	}
}

func toListResponse(items []domain.UseCase, total int64, in ports.ListUseCasesInput) listUseCasesResponse {
	page := in.Page
	if page < 1 {
		page = 1
	}
	perPage := in.PerPage
	if perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}

	out := make([]useCaseResponse, 0, len(items))
	for i := range items {
		out = append(out, toUseCaseResponse(&items[i]))
	}
	return listUseCasesResponse{
		Items:   out,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}
}
