package repository

import (
	"context"
	"errors"

	"lmsplatform/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	result := r.db.WithContext(ctx).Create(enrollment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyEnrolled
		}
		return result.Error
	}
	return nil
}

func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Enrollment, int64, error) {
	var enrollments []domain.Enrollment
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Enrollment{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Limit(limit).Offset(offset).Order("enrolled_at desc").Find(&enrollments).Error
	if err != nil {
		return nil, 0, err
	}
	return enrollments, total, nil
}
