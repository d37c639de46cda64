package dto

import "learnsphere/domain"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=64"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,max=64"`
}

type ForgotPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=64"`
}

type EditProfileRequest struct {
	Name string `json:"name" binding:"required,min=3,max=50"`
}

// MapEditProfileRequest carries only the whitelisted mutable fields.
// Email and password deliberately have no way through this mapping.
func MapEditProfileRequest(req *EditProfileRequest) domain.Student {
	return domain.Student{
		Name: req.Name,
	}
}

type SubmitFeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required,notblank,max=2000"`
}
