package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/aihub/usecase-hub/internal/core/domain"
)

type useCaseModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Title        string    `gorm:"not null"`
	Description  string    `gorm:"type:text"`
	BusinessArea string
	Status       string    `gorm:"index;not null"`
	OwnerID      uint      `gorm:"index;not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (useCaseModel) TableName() string { return "use_cases" }

type UseCaseRepository struct {
	db *gorm.DB
}

func NewUseCaseRepository(db *gorm.DB) *UseCaseRepository {
	return &UseCaseRepository{db: db}
}

func (r *UseCaseRepository) Create(ctx context.Context, uc *domain.UseCase) (*domain.UseCase, error) {
	m := useCaseModel{
		Title:        uc.Title,
		Description:  uc.Description,
		BusinessArea: uc.BusinessArea,
		Status:       string(uc.Status),
		OwnerID:      uc.OwnerID,
		CreatedAt:    uc.CreatedAt,
		UpdatedAt:    uc.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("insert use case: %w", err)
	}
	return toUseCase(&m), nil
}

func (r *UseCaseRepository) FindByID(ctx context.Context, id uint) (*domain.UseCase, error) {
	var m useCaseModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUseCaseNotFound
		}
		return nil, fmt.Errorf("find use case: %w", err)
	}
	return toUseCase(&m), nil
}

func (r *UseCaseRepository) List(ctx context.Context, offset, limit int, statuses []domain.UseCaseStatus) ([]domain.UseCase, int64, error) {
	q := r.db.WithContext(ctx).Model(&useCaseModel{})
	if len(statuses) > 0 {
		labels := make([]string, 0, len(statuses))
		for _, s := range statuses {
			labels = append(labels, string(s))
		}
		q = q.Where("status IN ?", labels)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count use cases: %w", err)
	}

	var models []useCaseModel
	err := q.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list use cases: %w", err)
	}

	out := make([]domain.UseCase, 0, len(models))
	for i := range models {
		out = append(out, *toUseCase(&models[i]))
	}
	return out, total, nil
}

func (r *UseCaseRepository) Update(ctx context.Context, uc *domain.UseCase) (*domain.UseCase, error) {
	m := useCaseModel{
		ID:           uc.ID,
		Title:        uc.Title,
		Description:  uc.Description,
		BusinessArea: uc.BusinessArea,
		Status:       string(uc.Status),
		OwnerID:      uc.OwnerID,
		CreatedAt:    uc.CreatedAt,
		UpdatedAt:    uc.UpdatedAt,
	}

	res := r.db.WithContext(ctx).Model(&useCaseModel{}).Where("id = ?", m.ID).Updates(map[string]any{
		"title":         m.Title,
		"description":   m.Description,
		"business_area": m.BusinessArea,
		"status":        m.Status,
		"updated_at":    m.UpdatedAt,
	})
	if res.Error != nil {
		return nil, fmt.Errorf("update use case: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrUseCaseNotFound
	}
	return toUseCase(&m), nil
}

func (r *UseCaseRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&useCaseModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete use case: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUseCaseNotFound
	}
	return nil
}

func toUseCase(m *useCaseModel) *domain.UseCase {
	return &domain.UseCase{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		BusinessArea: m.BusinessArea,
		Status:       domain.UseCaseStatus(m.Status),
		OwnerID:      m.OwnerID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
