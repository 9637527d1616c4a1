package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrCourseNotFound = errors.New("course not found")

type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"index;not null" json:"title"`
	Description string    `json:"description"`
	Instructor  string    `json:"instructor"`
	Price       float64   `json:"price"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;index" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}
