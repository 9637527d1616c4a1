package usecase

import (
	"context"

	"lmsplatform/internal/domain"

	"github.com/google/uuid"
)

type ProgressUseCase struct {
	courses  CourseRepository
	lessons  LessonRepository
	quizzes  QuizRepository
	progress ProgressRepository
}

func NewProgressUseCase(courses CourseRepository, lessons LessonRepository, quizzes QuizRepository, progress ProgressRepository) *ProgressUseCase {
	return &ProgressUseCase{
		courses:  courses,
		lessons:  lessons,
		quizzes:  quizzes,
		progress: progress,
	}
}

func (uc *ProgressUseCase) CourseProgress(ctx context.Context, userID, courseID uuid.UUID) (*domain.CourseProgress, error) {
	if _, err := uc.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	totalLessons, err := uc.lessons.CountByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	completed, err := uc.progress.CountCompletedInCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	totalQuizzes, err := uc.quizzes.CountByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	attempted, err := uc.progress.CountAttemptedInCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	percent := 0.0
	if totalLessons > 0 {
		percent = float64(completed) / float64(totalLessons) * 100
	}

	return &domain.CourseProgress{
		LessonsCompleted: int(completed),
		TotalLessons:     int(totalLessons),
		QuizzesAttempted: int(attempted),
		TotalQuizzes:     int(totalQuizzes),
		PercentCompleted: percent,
	}, nil
}
