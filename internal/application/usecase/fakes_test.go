package usecase

import (
	"context"

	"lmsplatform/internal/domain"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	byUsername map[string]*domain.User
	byID       map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byUsername: make(map[string]*domain.User),
		byID:       make(map[uuid.UUID]*domain.User),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, ok := f.byUsername[user.Username]; ok {
		return domain.ErrUsernameTaken
	}
	f.byUsername[user.Username] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := f.byUsername[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.byUsername)), nil
}

func (f *fakeUserRepo) SetAdmin(_ context.Context, username string) error {
	user, ok := f.byUsername[username]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.IsAdmin = true
	return nil
}

type fakeCourseRepo struct {
	courses map[uuid.UUID]*domain.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[uuid.UUID]*domain.Course)}
}

func (f *fakeCourseRepo) Create(_ context.Context, course *domain.Course) error {
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseRepo) List(_ context.Context, limit, offset int) ([]domain.Course, int64, error) {
	out := make([]domain.Course, 0, len(f.courses))
	for _, c := range f.courses {
		out = append(out, *c)
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (f *fakeCourseRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	return course, nil
}

type fakeLessonRepo struct {
	lessons map[uuid.UUID]*domain.Lesson
}

func newFakeLessonRepo() *fakeLessonRepo {
	return &fakeLessonRepo{lessons: make(map[uuid.UUID]*domain.Lesson)}
}

func (f *fakeLessonRepo) Create(_ context.Context, lesson *domain.Lesson) error {
	f.lessons[lesson.ID] = lesson
	return nil
}

func (f *fakeLessonRepo) ListByCourse(_ context.Context, courseID uuid.UUID, limit, offset int) ([]domain.Lesson, int64, error) {
	var out []domain.Lesson
	for _, l := range f.lessons {
		if l.CourseID == courseID {
			out = append(out, *l)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeLessonRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Lesson, error) {
	lesson, ok := f.lessons[id]
	if !ok {
		return nil, domain.ErrLessonNotFound
	}
	return lesson, nil
}

func (f *fakeLessonRepo) CountByCourse(_ context.Context, courseID uuid.UUID) (int64, error) {
	var count int64
	for _, l := range f.lessons {
		if l.CourseID == courseID {
			count++
		}
	}
	return count, nil
}

type fakeQuizRepo struct {
	quizzes   map[uuid.UUID]*domain.Quiz
	questions map[uuid.UUID][]domain.Question
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{
		quizzes:   make(map[uuid.UUID]*domain.Quiz),
		questions: make(map[uuid.UUID][]domain.Question),
	}
}

func (f *fakeQuizRepo) Create(_ context.Context, quiz *domain.Quiz) error {
	f.quizzes[quiz.ID] = quiz
	return nil
}

func (f *fakeQuizRepo) ListByCourse(_ context.Context, courseID uuid.UUID, limit, offset int) ([]domain.Quiz, int64, error) {
	var out []domain.Quiz
	for _, q := range f.quizzes {
		if q.CourseID == courseID {
			out = append(out, *q)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeQuizRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Quiz, error) {
	quiz, ok := f.quizzes[id]
	if !ok {
		return nil, domain.ErrQuizNotFound
	}
	return quiz, nil
}

func (f *fakeQuizRepo) CountByCourse(_ context.Context, courseID uuid.UUID) (int64, error) {
	var count int64
	for _, q := range f.quizzes {
		if q.CourseID == courseID {
			count++
		}
	}
	return count, nil
}

func (f *fakeQuizRepo) CreateQuestion(_ context.Context, question *domain.Question) error {
	f.questions[question.QuizID] = append(f.questions[question.QuizID], *question)
	return nil
}

func (f *fakeQuizRepo) ListQuestions(_ context.Context, quizID uuid.UUID, limit, offset int) ([]domain.Question, int64, error) {
	items := f.questions[quizID]
	return items, int64(len(items)), nil
}

func (f *fakeQuizRepo) AllQuestions(_ context.Context, quizID uuid.UUID) ([]domain.Question, error) {
	return f.questions[quizID], nil
}

type enrollmentKey struct {
	userID   uuid.UUID
	courseID uuid.UUID
}

type fakeEnrollmentRepo struct {
	enrollments map[enrollmentKey]*domain.Enrollment
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{enrollments: make(map[enrollmentKey]*domain.Enrollment)}
}

func (f *fakeEnrollmentRepo) Create(_ context.Context, enrollment *domain.Enrollment) error {
	key := enrollmentKey{enrollment.UserID, enrollment.CourseID}
	if _, ok := f.enrollments[key]; ok {
		return domain.ErrAlreadyEnrolled
	}
	f.enrollments[key] = enrollment
	return nil
}

func (f *fakeEnrollmentRepo) ListByUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]domain.Enrollment, int64, error) {
	var out []domain.Enrollment
	for _, e := range f.enrollments {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, int64(len(out)), nil
}

type completionKey struct {
	userID   uuid.UUID
	lessonID uuid.UUID
}

type fakeProgressRepo struct {
	completions map[completionKey]*domain.LessonCompletion
	attempts    []*domain.QuizAttempt

	// lessonCourse and quizCourse stand in for the SQL joins.
	lessonCourse map[uuid.UUID]uuid.UUID
	quizCourse   map[uuid.UUID]uuid.UUID
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{
		completions:  make(map[completionKey]*domain.LessonCompletion),
		lessonCourse: make(map[uuid.UUID]uuid.UUID),
		quizCourse:   make(map[uuid.UUID]uuid.UUID),
	}
}

func (f *fakeProgressRepo) CreateCompletion(_ context.Context, completion *domain.LessonCompletion) error {
	key := completionKey{completion.UserID, completion.LessonID}
	if _, ok := f.completions[key]; ok {
		return domain.ErrAlreadyCompleted
	}
	f.completions[key] = completion
	return nil
}

func (f *fakeProgressRepo) CountCompletedInCourse(_ context.Context, userID, courseID uuid.UUID) (int64, error) {
	var count int64
	for key := range f.completions {
		if key.userID == userID && f.lessonCourse[key.lessonID] == courseID {
			count++
		}
	}
	return count, nil
}

func (f *fakeProgressRepo) CreateAttempt(_ context.Context, attempt *domain.QuizAttempt) error {
	f.attempts = append(f.attempts, attempt)
	return nil
}

func (f *fakeProgressRepo) ListAttempts(_ context.Context, userID, quizID uuid.UUID, limit, offset int) ([]domain.QuizAttempt, int64, error) {
	var out []domain.QuizAttempt
	for _, a := range f.attempts {
		if a.UserID == userID && a.QuizID == quizID {
			out = append(out, *a)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeProgressRepo) CountAttemptedInCourse(_ context.Context, userID, courseID uuid.UUID) (int64, error) {
	seen := make(map[uuid.UUID]bool)
	for _, a := range f.attempts {
		if a.UserID == userID && f.quizCourse[a.QuizID] == courseID {
			seen[a.QuizID] = true
		}
	}
	return int64(len(seen)), nil
}
