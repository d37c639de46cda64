package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"learnsphere/domain"
	"learnsphere/utils"
)

type authService struct {
	studentRepo domain.StudentRepository
	accessToken *utils.JWTManager
}

func NewAuthService(studentRepo domain.StudentRepository, secret string) domain.AuthUseCase {
	return &authService{
		studentRepo: studentRepo,
		accessToken: utils.NewJWTManager(secret, domain.TokenDuration),
	}
}

func (s *authService) Register(ctx context.Context, email, password, name string) error {
	if password == "" {
		return domain.E(domain.ErrValidation, "Password is required")
	}

	if _, err := s.studentRepo.GetByEmail(ctx, email); err == nil {
		return domain.E(domain.ErrConflict, "Email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), domain.BcryptCost)
	if err != nil {
		return err
	}

	student := &domain.Student{
		Email:        email,
		Password:     string(hashed),
		Name:         name,
		TotalPayable: 0,
	}

	// the unique index on email catches a registration racing the
	// pre-check above
	return s.studentRepo.Create(ctx, student)
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	student, err := s.studentRepo.GetByEmail(ctx, email)
	if err != nil {
		// same error whether the email or the password is wrong
		return "", domain.E(domain.ErrAuth, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(password)); err != nil {
		return "", domain.E(domain.ErrAuth, "Invalid credentials")
	}

	return s.accessToken.GenerateToken(student.ID, student.Email)
}

func (s *authService) ChangePassword(ctx context.Context, studentID uint, currentPassword, newPassword string) error {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.E(domain.ErrNotFound, "Student not found")
		}
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(currentPassword)) != nil {
		return domain.E(domain.ErrAuth, "Invalid current password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), domain.BcryptCost)
	if err != nil {
		return err
	}

	return s.studentRepo.UpdatePassword(ctx, student.ID, string(hashed))
}

func (s *authService) ResetPassword(ctx context.Context, email, newPassword string) error {
	student, err := s.studentRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.E(domain.ErrNotFound, "Student not found")
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), domain.BcryptCost)
	if err != nil {
		return err
	}

	return s.studentRepo.UpdatePassword(ctx, student.ID, string(hashed))
}

func (s *authService) GetAccessTokenManager() *utils.JWTManager {
	return s.accessToken
}
