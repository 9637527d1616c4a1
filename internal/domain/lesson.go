package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrLessonNotFound   = errors.New("lesson not found")
	ErrAlreadyCompleted = errors.New("lesson already completed")
)

type Lesson struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CourseID  uuid.UUID `gorm:"type:uuid;index;not null" json:"course_id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `json:"content"`
	Order     int       `gorm:"column:sort_order" json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

type LessonCompletion struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_lesson;not null" json:"user_id"`
	LessonID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_lesson;not null" json:"lesson_id"`
	CompletedAt time.Time `gorm:"autoCreateTime" json:"completed_at"`
}
