package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrAlreadyEnrolled = errors.New("already enrolled in this course")

type Enrollment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_course;not null" json:"user_id"`
	CourseID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_course;not null" json:"course_id"`
	EnrolledAt time.Time `gorm:"autoCreateTime" json:"enrolled_at"`
}

// CourseProgress is computed per user from completions and attempts. It
// is not persisted.
type CourseProgress struct {
	LessonsCompleted int     `json:"lessons_completed"`
	TotalLessons     int     `json:"total_lessons"`
	QuizzesAttempted int     `json:"quizzes_attempted"`
	TotalQuizzes     int     `json:"total_quizzes"`
	PercentCompleted float64 `json:"percent_completed"`
}
