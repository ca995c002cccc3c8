// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"mall/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository is the identity collaborator consumed by the approval
// workflow. The workflow only reads accounts; registration and deactivation
// belong to the account surface.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// ListActiveByRole enumerates all active accounts holding the given role.
	// Used to address admin fan-out at registration time.
	ListActiveByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error)

	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.Account, passwordHash string) error

	// FindPasswordHash returns the stored credential hash for an email login.
	FindPasswordHash(ctx context.Context, email string) (string, error)
}
