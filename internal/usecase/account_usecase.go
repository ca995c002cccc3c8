package usecase

import (
	"context"

	"mall/internal/domain/entity"
)

// SignupInput registers a vendor or client account. Admin accounts are
// provisioned operationally and cannot be self-served.
type SignupInput struct {
	Name     string      `json:"name" validate:"required,max=100"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=8,max=72"`
	Role     entity.Role `json:"role" validate:"required"`
}

// LoginInput authenticates an existing account.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the issued token and the public account view.
type LoginOutput struct {
	AccessToken string          `json:"access_token"`
	Account     *entity.Account `json:"account"`
}

// AccountUsecase is the identity surface consumed by the workflow: signup,
// login, and actor resolution.
type AccountUsecase interface {
	// Signup creates a vendor or client account with a hashed credential.
	Signup(ctx context.Context, input *SignupInput) (*entity.Account, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetAccount returns the public view of one account.
	GetAccount(ctx context.Context, actor entity.Actor) (*entity.Account, error)
}
