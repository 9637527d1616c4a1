package repository

import (
	"context"
	"errors"

	"lmsplatform/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LessonRepository struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{db: db}
}

func (r *LessonRepository) Create(ctx context.Context, lesson *domain.Lesson) error {
	return r.db.WithContext(ctx).Create(lesson).Error
}

func (r *LessonRepository) ListByCourse(ctx context.Context, courseID uuid.UUID, limit, offset int) ([]domain.Lesson, int64, error) {
	var lessons []domain.Lesson
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Lesson{}).Where("course_id = ?", courseID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Limit(limit).Offset(offset).Order("sort_order asc").Find(&lessons).Error
	if err != nil {
		return nil, 0, err
	}
	return lessons, total, nil
}

func (r *LessonRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	var lesson domain.Lesson
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&lesson).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLessonNotFound
		}
		return nil, err
	}
	return &lesson, nil
}

func (r *LessonRepository) CountByCourse(ctx context.Context, courseID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Lesson{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	return count, err
}
