package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lmsplatform/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const courseListCacheTTL = 10 * time.Minute

type CourseRepository struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewCourseRepository(db *gorm.DB, rdb *redis.Client) *CourseRepository {
	return &CourseRepository{db: db, rdb: rdb}
}

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

// List reads a page of courses, serving it from Redis when a fresh copy
// exists. Course writes are rare, so cached pages simply age out.
func (r *CourseRepository) List(ctx context.Context, limit, offset int) ([]domain.Course, int64, error) {
	key := fmt.Sprintf("courses:list:%d:%d", limit, offset)

	if r.rdb != nil {
		val, err := r.rdb.Get(ctx, key).Result()
		if err == nil {
			var cached struct {
				Courses []domain.Course
				Total   int64
			}
			if json.Unmarshal([]byte(val), &cached) == nil {
				return cached.Courses, cached.Total, nil
			}
		}
	}

	var courses []domain.Course
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Course{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Limit(limit).Offset(offset).Order("created_at desc").Find(&courses).Error
	if err != nil {
		return nil, 0, err
	}

	if r.rdb != nil {
		cached := struct {
			Courses []domain.Course
			Total   int64
		}{courses, total}
		if data, err := json.Marshal(cached); err == nil {
			r.rdb.Set(ctx, key, data, courseListCacheTTL)
		}
	}

	return courses, total, nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	var course domain.Course
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}
