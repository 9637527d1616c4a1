package repository

import (
	"context"
	"errors"

	"lmsplatform/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

func (r *QuizRepository) Create(ctx context.Context, quiz *domain.Quiz) error {
	return r.db.WithContext(ctx).Create(quiz).Error
}

func (r *QuizRepository) ListByCourse(ctx context.Context, courseID uuid.UUID, limit, offset int) ([]domain.Quiz, int64, error) {
	var quizzes []domain.Quiz
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Quiz{}).Where("course_id = ?", courseID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Limit(limit).Offset(offset).Order("created_at asc").Find(&quizzes).Error
	if err != nil {
		return nil, 0, err
	}
	return quizzes, total, nil
}

func (r *QuizRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quiz, error) {
	var quiz domain.Quiz
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&quiz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQuizNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) CountByCourse(ctx context.Context, courseID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Quiz{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	return count, err
}

func (r *QuizRepository) CreateQuestion(ctx context.Context, question *domain.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *QuizRepository) ListQuestions(ctx context.Context, quizID uuid.UUID, limit, offset int) ([]domain.Question, int64, error) {
	var questions []domain.Question
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Question{}).Where("quiz_id = ?", quizID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Limit(limit).Offset(offset).Order("created_at asc, id asc").Find(&questions).Error
	if err != nil {
		return nil, 0, err
	}
	return questions, total, nil
}

// AllQuestions loads every question of a quiz in creation order, with id
// breaking timestamp ties so the order is stable. Scoring matches
// submitted answers to this order.
func (r *QuizRepository) AllQuestions(ctx context.Context, quizID uuid.UUID) ([]domain.Question, error) {
	var questions []domain.Question
	err := r.db.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("created_at asc, id asc").
		Find(&questions).Error
	return questions, err
}
