package repository

import (
	"context"

	"gorm.io/gorm"

	"learnsphere/domain"
)

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) domain.CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) GetByID(ctx context.Context, id uint) (*domain.Course, error) {
	var course domain.Course
	if err := r.db.WithContext(ctx).First(&course, "id = ?", id).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &course, nil
}

func (r *courseRepository) GetByIDWithFeedbacks(ctx context.Context, id uint) (*domain.Course, error) {
	var course domain.Course
	if err := r.db.WithContext(ctx).
		Preload("Feedbacks", func(db *gorm.DB) *gorm.DB {
			return db.Order("feedbacks.id ASC")
		}).
		First(&course, "id = ?", id).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &course, nil
}

func (r *courseRepository) ListAll(ctx context.Context) ([]domain.Course, error) {
	var courses []domain.Course
	if err := r.db.WithContext(ctx).Find(&courses).Error; err != nil {
		return nil, translateDBError(err)
	}
	return courses, nil
}

func (r *courseRepository) AppendFeedback(ctx context.Context, feedback *domain.Feedback) error {
	if err := r.db.WithContext(ctx).Create(feedback).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}
