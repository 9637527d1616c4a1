package usecase

import (
	"context"

	"lmsplatform/internal/domain"

	"github.com/google/uuid"
)

type CourseUseCase struct {
	courses     CourseRepository
	enrollments EnrollmentRepository
}

func NewCourseUseCase(courses CourseRepository, enrollments EnrollmentRepository) *CourseUseCase {
	return &CourseUseCase{
		courses:     courses,
		enrollments: enrollments,
	}
}

func (uc *CourseUseCase) Create(ctx context.Context, title, description, instructor string, price float64, createdBy uuid.UUID) (*domain.Course, error) {
	course := &domain.Course{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Instructor:  instructor,
		Price:       price,
		CreatedBy:   createdBy,
	}
	if err := uc.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (uc *CourseUseCase) List(ctx context.Context, limit, offset int) ([]domain.Course, int64, error) {
	return uc.courses.List(ctx, limit, offset)
}

func (uc *CourseUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	return uc.courses.GetByID(ctx, id)
}

func (uc *CourseUseCase) Enroll(ctx context.Context, userID, courseID uuid.UUID) (*domain.Enrollment, error) {
	if _, err := uc.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	enrollment := &domain.Enrollment{
		ID:       uuid.New(),
		UserID:   userID,
		CourseID: courseID,
	}
	if err := uc.enrollments.Create(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (uc *CourseUseCase) MyEnrollments(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Enrollment, int64, error) {
	return uc.enrollments.ListByUser(ctx, userID, limit, offset)
}
