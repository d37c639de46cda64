package service

import (
	"context"
	"errors"

	"learnsphere/domain"
)

type profileService struct {
	studentRepo domain.StudentRepository
}

func NewProfileService(studentRepo domain.StudentRepository) domain.ProfileUseCase {
	return &profileService{studentRepo: studentRepo}
}

func (s *profileService) GetProfile(ctx context.Context, studentID uint) (*domain.Student, error) {
	student, err := s.studentRepo.GetByIDWithCourses(ctx, studentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.E(domain.ErrNotFound, "Student not found")
		}
		return nil, err
	}
	return student, nil
}

func (s *profileService) EditProfile(ctx context.Context, studentID uint, fields domain.Student) error {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.E(domain.ErrNotFound, "Student not found")
		}
		return err
	}

	return s.studentRepo.UpdateProfile(ctx, studentID, fields)
}
