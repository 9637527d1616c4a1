package usecase

import (
	"context"

	"lmsplatform/internal/domain"

	"github.com/google/uuid"
)

// Repository contracts consumed by the use cases. The Postgres
// implementations live in internal/infrastructure/repository; tests
// substitute in-memory fakes.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
	SetAdmin(ctx context.Context, username string) error
}

type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) error
	List(ctx context.Context, limit, offset int) ([]domain.Course, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)
}

type LessonRepository interface {
	Create(ctx context.Context, lesson *domain.Lesson) error
	ListByCourse(ctx context.Context, courseID uuid.UUID, limit, offset int) ([]domain.Lesson, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)
	CountByCourse(ctx context.Context, courseID uuid.UUID) (int64, error)
}

type QuizRepository interface {
	Create(ctx context.Context, quiz *domain.Quiz) error
	ListByCourse(ctx context.Context, courseID uuid.UUID, limit, offset int) ([]domain.Quiz, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Quiz, error)
	CountByCourse(ctx context.Context, courseID uuid.UUID) (int64, error)
	CreateQuestion(ctx context.Context, question *domain.Question) error
	ListQuestions(ctx context.Context, quizID uuid.UUID, limit, offset int) ([]domain.Question, int64, error)
	AllQuestions(ctx context.Context, quizID uuid.UUID) ([]domain.Question, error)
}

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *domain.Enrollment) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Enrollment, int64, error)
}

type ProgressRepository interface {
	CreateCompletion(ctx context.Context, completion *domain.LessonCompletion) error
	CountCompletedInCourse(ctx context.Context, userID, courseID uuid.UUID) (int64, error)
	CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error
	ListAttempts(ctx context.Context, userID, quizID uuid.UUID, limit, offset int) ([]domain.QuizAttempt, int64, error)
	CountAttemptedInCourse(ctx context.Context, userID, courseID uuid.UUID) (int64, error)
}
