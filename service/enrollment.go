package service

import (
	"context"
	"errors"

	"learnsphere/domain"
)

type enrollmentService struct {
	studentRepo domain.StudentRepository
	courseRepo  domain.CourseRepository
}

func NewEnrollmentService(studentRepo domain.StudentRepository, courseRepo domain.CourseRepository) domain.EnrollmentUseCase {
	return &enrollmentService{
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
	}
}

func (s *enrollmentService) AddCourse(ctx context.Context, studentID, courseID uint) (*domain.AddCourseResult, error) {
	student, err := s.studentRepo.GetByIDWithCourses(ctx, studentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.E(domain.ErrNotFound, "Student not found")
		}
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.E(domain.ErrNotFound, "Course not found")
		}
		return nil, err
	}

	for _, enrolled := range student.Courses {
		if enrolled.ID == course.ID {
			return nil, domain.E(domain.ErrConflict, "Course already added to your account")
		}
	}

	// the store enforces pair uniqueness too, so two adds racing past the
	// check above cannot both land
	totalPayable, err := s.studentRepo.AddCourse(ctx, studentID, course)
	if err != nil {
		return nil, err
	}

	return &domain.AddCourseResult{
		Message: "Course added successfully",
		Course: domain.CourseSummary{
			ID:    course.ID,
			Title: course.Title,
			Price: course.Price,
		},
		TotalPayable: totalPayable,
	}, nil
}

func (s *enrollmentService) RemoveCourse(ctx context.Context, studentID, courseID uint) error {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.E(domain.ErrNotFound, "Student not found")
		}
		return err
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.E(domain.ErrNotFound, "Course not found")
		}
		return err
	}

	return s.studentRepo.RemoveCourse(ctx, studentID, course)
}

func (s *enrollmentService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	return s.courseRepo.ListAll(ctx)
}

func (s *enrollmentService) GetCourseDetails(ctx context.Context, courseID uint) (*domain.CourseDetails, error) {
	course, err := s.courseRepo.GetByIDWithFeedbacks(ctx, courseID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.E(domain.ErrNotFound, "Course not found")
		}
		return nil, err
	}

	feedbacks := make([]string, 0, len(course.Feedbacks))
	for _, fb := range course.Feedbacks {
		feedbacks = append(feedbacks, fb.Content)
	}

	return &domain.CourseDetails{
		Course: domain.CourseSummary{
			ID:    course.ID,
			Title: course.Title,
			Price: course.Price,
		},
		Feedbacks: feedbacks,
	}, nil
}
