package repository

import (
	"context"

	"gorm.io/gorm"

	"learnsphere/domain"
)

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) domain.StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *domain.Student) error {
	if err := r.db.WithContext(ctx).Create(student).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}

func (r *studentRepository) GetByEmail(ctx context.Context, email string) (*domain.Student, error) {
	var student domain.Student
	if err := r.db.WithContext(ctx).First(&student, "email = ?", email).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &student, nil
}

func (r *studentRepository) GetByID(ctx context.Context, id uint) (*domain.Student, error) {
	var student domain.Student
	if err := r.db.WithContext(ctx).First(&student, "id = ?", id).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &student, nil
}

func (r *studentRepository) GetByIDWithCourses(ctx context.Context, id uint) (*domain.Student, error) {
	var student domain.Student
	if err := r.db.WithContext(ctx).
		Preload("Courses").
		First(&student, "id = ?", id).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &student, nil
}

func (r *studentRepository) UpdatePassword(ctx context.Context, id uint, hash string) error {
	err := r.db.WithContext(ctx).
		Model(&domain.Student{}).
		Where("id = ?", id).
		Update("password", hash).Error
	return translateDBError(err)
}

// UpdateProfile persists only the whitelisted mutable attributes. Email and
// password never travel through this path.
func (r *studentRepository) UpdateProfile(ctx context.Context, id uint, student domain.Student) error {
	err := r.db.WithContext(ctx).
		Model(&domain.Student{}).
		Where("id = ?", id).
		Select("name").
		Updates(student).Error
	return translateDBError(err)
}

// AddCourse inserts the enrollment row and bumps the payable balance in one
// transaction. The join table's composite key turns a racing duplicate add
// into a unique violation, which comes back as a conflict.
func (r *studentRepository) AddCourse(ctx context.Context, studentID uint, course *domain.Course) (float64, error) {
	tx := r.db.WithContext(ctx).Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec(
		`INSERT INTO student_courses (student_id, course_id) VALUES (?, ?)`,
		studentID, course.ID,
	).Error; err != nil {
		tx.Rollback()
		return 0, translateDBError(err)
	}

	if err := tx.Model(&domain.Student{}).
		Where("id = ?", studentID).
		Update("total_payable", gorm.Expr("total_payable + ?", course.Price)).Error; err != nil {
		tx.Rollback()
		return 0, translateDBError(err)
	}

	var student domain.Student
	if err := tx.Select("total_payable").First(&student, "id = ?", studentID).Error; err != nil {
		tx.Rollback()
		return 0, translateDBError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return 0, translateDBError(err)
	}

	return student.TotalPayable, nil
}

// RemoveCourse deletes the enrollment row and decrements the payable balance
// in one transaction. A missing row means the course was never selected.
func (r *studentRepository) RemoveCourse(ctx context.Context, studentID uint, course *domain.Course) error {
	tx := r.db.WithContext(ctx).Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	res := tx.Exec(
		`DELETE FROM student_courses WHERE student_id = ? AND course_id = ?`,
		studentID, course.ID,
	)
	if res.Error != nil {
		tx.Rollback()
		return translateDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return domain.E(domain.ErrValidation, "Course not found in student selection")
	}

	if err := tx.Model(&domain.Student{}).
		Where("id = ?", studentID).
		Update("total_payable", gorm.Expr("total_payable - ?", course.Price)).Error; err != nil {
		tx.Rollback()
		return translateDBError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return translateDBError(err)
	}

	return nil
}
