package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/sportshop/backend/internal/domain/shared"
)

// UserRepository defines the contract for user persistence
type UserRepository interface {
	shared.Repository[User]
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	// CountAll returns the total number of accounts regardless of role.
	// Used to seed the very first account as administrator.
	CountAll(ctx context.Context) (int64, error)
	// CreateWithCredential persists the user and its credential atomically
	CreateWithCredential(ctx context.Context, user *User, credential *Credential) error
	FindCredential(ctx context.Context, userID uuid.UUID) (*Credential, error)
}

// EmployeeRepository defines the contract for employee persistence
type EmployeeRepository interface {
	shared.Repository[Employee]
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Employee, error)
}
