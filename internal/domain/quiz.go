package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrAnswerCountMismatch = errors.New("number of answers does not match number of questions")
	ErrCorrectOptionRange  = errors.New("correct_option is out of range")
)

type Quiz struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CourseID  uuid.UUID `gorm:"type:uuid;index;not null" json:"course_id"`
	Title     string    `gorm:"not null" json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type Question struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	QuizID        uuid.UUID                   `gorm:"type:uuid;index;not null" json:"quiz_id"`
	Text          string                      `gorm:"not null" json:"text"`
	Options       datatypes.JSONSlice[string] `json:"options"`
	CorrectOption int                         `gorm:"not null" json:"-"`
	CreatedAt     time.Time                   `json:"created_at"`
}

type QuizAttempt struct {
	ID          uuid.UUID                `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID                `gorm:"type:uuid;index;not null" json:"user_id"`
	QuizID      uuid.UUID                `gorm:"type:uuid;index;not null" json:"quiz_id"`
	Answers     datatypes.JSONSlice[int] `json:"answers"`
	Score       float64                  `json:"score"`
	AttemptedAt time.Time                `gorm:"autoCreateTime" json:"attempted_at"`
}
