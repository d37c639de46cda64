package domain

import "context"

// StudentRepository is the credential store: student records plus the
// enrollment relation and its payable counter.
type StudentRepository interface {
	Create(ctx context.Context, student *Student) error
	GetByEmail(ctx context.Context, email string) (*Student, error)
	GetByID(ctx context.Context, id uint) (*Student, error)
	GetByIDWithCourses(ctx context.Context, id uint) (*Student, error)
	UpdatePassword(ctx context.Context, id uint, hash string) error
	UpdateProfile(ctx context.Context, id uint, student Student) error

	// AddCourse and RemoveCourse mutate the join row and the payable
	// column inside one transaction and return the resulting balance.
	AddCourse(ctx context.Context, studentID uint, course *Course) (float64, error)
	RemoveCourse(ctx context.Context, studentID uint, course *Course) error
}

type ProfileUseCase interface {
	GetProfile(ctx context.Context, studentID uint) (*Student, error)
	EditProfile(ctx context.Context, studentID uint, fields Student) error
}
