package usecase

import (
	"context"

	"hangar/internal/domain/entity"
)

// LoginInput carries the credentials presented at login.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput is the successful login payload. ExpiresIn is the token
// lifetime in seconds.
type LoginOutput struct {
	Token     string              `json:"token"`
	ExpiresIn int64               `json:"expires_in"`
	User      *entity.UserSummary `json:"user"`
}

// AuthUsecase defines the interface for authentication use cases.
type AuthUsecase interface {
	// Login verifies the credentials and issues a signed token. Unknown
	// usernames and wrong passwords produce the same error.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Resolve validates a bearer token and returns the user ID it names.
	Resolve(ctx context.Context, token string) (uint, error)

	// CurrentUser returns the public profile of an authenticated user.
	CurrentUser(ctx context.Context, userID uint) (*entity.UserSummary, error)
}
