package repository

import (
	"context"
	"errors"

	"lmsplatform/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) CreateCompletion(ctx context.Context, completion *domain.LessonCompletion) error {
	result := r.db.WithContext(ctx).Create(completion)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyCompleted
		}
		return result.Error
	}
	return nil
}

func (r *ProgressRepository) CountCompletedInCourse(ctx context.Context, userID, courseID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.LessonCompletion{}).
		Joins("JOIN lessons ON lessons.id = lesson_completions.lesson_id").
		Where("lesson_completions.user_id = ? AND lessons.course_id = ?", userID, courseID).
		Count(&count).Error
	return count, err
}

func (r *ProgressRepository) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *ProgressRepository) ListAttempts(ctx context.Context, userID, quizID uuid.UUID, limit, offset int) ([]domain.QuizAttempt, int64, error) {
	var attempts []domain.QuizAttempt
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.QuizAttempt{}).
		Where("user_id = ? AND quiz_id = ?", userID, quizID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Limit(limit).Offset(offset).Order("attempted_at desc").Find(&attempts).Error
	if err != nil {
		return nil, 0, err
	}
	return attempts, total, nil
}

// CountAttemptedInCourse counts the distinct quizzes of a course the user
// has attempted at least once.
func (r *ProgressRepository) CountAttemptedInCourse(ctx context.Context, userID, courseID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.QuizAttempt{}).
		Joins("JOIN quizzes ON quizzes.id = quiz_attempts.quiz_id").
		Where("quiz_attempts.user_id = ? AND quizzes.course_id = ?", userID, courseID).
		Distinct("quiz_attempts.quiz_id").
		Count(&count).Error
	return count, err
}
