package domain

import "context"

// CourseRepository is the catalog store: courses and their feedback entries.
type CourseRepository interface {
	GetByID(ctx context.Context, id uint) (*Course, error)
	GetByIDWithFeedbacks(ctx context.Context, id uint) (*Course, error)
	ListAll(ctx context.Context) ([]Course, error)
	AppendFeedback(ctx context.Context, feedback *Feedback) error
}

// CourseSummary is the slice of a course returned alongside an enrollment.
type CourseSummary struct {
	ID    uint    `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

type AddCourseResult struct {
	Message      string        `json:"message"`
	Course       CourseSummary `json:"course"`
	TotalPayable float64       `json:"total_payable"`
}

type CourseDetails struct {
	Course    CourseSummary `json:"course"`
	Feedbacks []string      `json:"feedbacks"`
}

type EnrollmentUseCase interface {
	AddCourse(ctx context.Context, studentID, courseID uint) (*AddCourseResult, error)
	RemoveCourse(ctx context.Context, studentID, courseID uint) error
	ListCourses(ctx context.Context) ([]Course, error)
	GetCourseDetails(ctx context.Context, courseID uint) (*CourseDetails, error)
}

type FeedbackUseCase interface {
	SubmitFeedback(ctx context.Context, studentID, courseID uint, content string) error
}
