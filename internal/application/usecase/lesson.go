package usecase

import (
	"context"

	"lmsplatform/internal/domain"

	"github.com/google/uuid"
)

type LessonUseCase struct {
	lessons  LessonRepository
	courses  CourseRepository
	progress ProgressRepository
}

func NewLessonUseCase(lessons LessonRepository, courses CourseRepository, progress ProgressRepository) *LessonUseCase {
	return &LessonUseCase{
		lessons:  lessons,
		courses:  courses,
		progress: progress,
	}
}

func (uc *LessonUseCase) Create(ctx context.Context, courseID uuid.UUID, title, content string, order int) (*domain.Lesson, error) {
	if _, err := uc.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	lesson := &domain.Lesson{
		ID:       uuid.New(),
		CourseID: courseID,
		Title:    title,
		Content:  content,
		Order:    order,
	}
	if err := uc.lessons.Create(ctx, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (uc *LessonUseCase) ListByCourse(ctx context.Context, courseID uuid.UUID, limit, offset int) ([]domain.Lesson, int64, error) {
	return uc.lessons.ListByCourse(ctx, courseID, limit, offset)
}

func (uc *LessonUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	return uc.lessons.GetByID(ctx, id)
}

// Complete records that the user finished a lesson. A lesson counts once:
// repeat completions surface domain.ErrAlreadyCompleted.
func (uc *LessonUseCase) Complete(ctx context.Context, userID, lessonID uuid.UUID) (*domain.LessonCompletion, error) {
	if _, err := uc.lessons.GetByID(ctx, lessonID); err != nil {
		return nil, err
	}

	completion := &domain.LessonCompletion{
		ID:       uuid.New(),
		UserID:   userID,
		LessonID: lessonID,
	}
	if err := uc.progress.CreateCompletion(ctx, completion); err != nil {
		return nil, err
	}
	return completion, nil
}
