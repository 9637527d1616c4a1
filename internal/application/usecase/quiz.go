package usecase

import (
	"context"

	"lmsplatform/internal/domain"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QuizUseCase struct {
	quizzes  QuizRepository
	courses  CourseRepository
	progress ProgressRepository
}

func NewQuizUseCase(quizzes QuizRepository, courses CourseRepository, progress ProgressRepository) *QuizUseCase {
	return &QuizUseCase{
		quizzes:  quizzes,
		courses:  courses,
		progress: progress,
	}
}

func (uc *QuizUseCase) Create(ctx context.Context, courseID uuid.UUID, title string) (*domain.Quiz, error) {
	if _, err := uc.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	quiz := &domain.Quiz{
		ID:       uuid.New(),
		CourseID: courseID,
		Title:    title,
	}
	if err := uc.quizzes.Create(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (uc *QuizUseCase) ListByCourse(ctx context.Context, courseID uuid.UUID, limit, offset int) ([]domain.Quiz, int64, error) {
	return uc.quizzes.ListByCourse(ctx, courseID, limit, offset)
}

func (uc *QuizUseCase) AddQuestion(ctx context.Context, quizID uuid.UUID, text string, options []string, correctOption int) (*domain.Question, error) {
	if _, err := uc.quizzes.GetByID(ctx, quizID); err != nil {
		return nil, err
	}
	if correctOption < 0 || correctOption >= len(options) {
		return nil, domain.ErrCorrectOptionRange
	}

	question := &domain.Question{
		ID:            uuid.New(),
		QuizID:        quizID,
		Text:          text,
		Options:       datatypes.NewJSONSlice(options),
		CorrectOption: correctOption,
	}
	if err := uc.quizzes.CreateQuestion(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (uc *QuizUseCase) ListQuestions(ctx context.Context, quizID uuid.UUID, limit, offset int) ([]domain.Question, int64, error) {
	if _, err := uc.quizzes.GetByID(ctx, quizID); err != nil {
		return nil, 0, err
	}
	return uc.quizzes.ListQuestions(ctx, quizID, limit, offset)
}

// Attempt scores a submission against the quiz's questions and records
// the attempt. Answers are matched to questions in creation order; the
// score is the fraction of correct answers.
func (uc *QuizUseCase) Attempt(ctx context.Context, userID, quizID uuid.UUID, answers []int) (*domain.QuizAttempt, error) {
	if _, err := uc.quizzes.GetByID(ctx, quizID); err != nil {
		return nil, err
	}

	questions, err := uc.quizzes.AllQuestions(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if len(answers) != len(questions) {
		return nil, domain.ErrAnswerCountMismatch
	}

	correct := 0
	for i, q := range questions {
		if answers[i] == q.CorrectOption {
			correct++
		}
	}
	score := 0.0
	if len(questions) > 0 {
		score = float64(correct) / float64(len(questions))
	}

	attempt := &domain.QuizAttempt{
		ID:      uuid.New(),
		UserID:  userID,
		QuizID:  quizID,
		Answers: datatypes.NewJSONSlice(answers),
		Score:   score,
	}
	if err := uc.progress.CreateAttempt(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

func (uc *QuizUseCase) ListAttempts(ctx context.Context, userID, quizID uuid.UUID, limit, offset int) ([]domain.QuizAttempt, int64, error) {
	if _, err := uc.quizzes.GetByID(ctx, quizID); err != nil {
		return nil, 0, err
	}
	return uc.progress.ListAttempts(ctx, userID, quizID, limit, offset)
}
