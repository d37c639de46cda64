// domain/auth.go
package domain

import (
	"context"

	"learnsphere/utils"
)

type AuthUseCase interface {
	GetAccessTokenManager() *utils.JWTManager
	Register(ctx context.Context, email, password, name string) error
	Login(ctx context.Context, email, password string) (string, error)
	ChangePassword(ctx context.Context, studentID uint, currentPassword, newPassword string) error
	ResetPassword(ctx context.Context, email, newPassword string) error
}
