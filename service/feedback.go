package service

import (
	"context"
	"errors"

	"learnsphere/domain"
)

type feedbackService struct {
	studentRepo domain.StudentRepository
	courseRepo  domain.CourseRepository
}

func NewFeedbackService(studentRepo domain.StudentRepository, courseRepo domain.CourseRepository) domain.FeedbackUseCase {
	return &feedbackService{
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
	}
}

func (s *feedbackService) SubmitFeedback(ctx context.Context, studentID, courseID uint, content string) error {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
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

	feedback := &domain.Feedback{
		Content:   content,
		CourseID:  course.ID,
		StudentID: student.ID,
	}

	return s.courseRepo.AppendFeedback(ctx, feedback)
}
