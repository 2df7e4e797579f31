package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sportshop/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// Credential stores the password hash for a user account
type Credential struct {
	shared.BaseEntity
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (Credential) TableName() string {
	return "user_credentials"
}

// NewCredential creates a credential for the user with a bcrypt hash
func NewCredential(userID uuid.UUID, password string) (*Credential, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.NewDomainError("HASH_FAILED", "Failed to hash password")
	}

	return &Credential{
		BaseEntity:   shared.NewBaseEntity(),
		UserID:       userID,
		PasswordHash: string(hash),
	}, nil
}

// VerifyPassword checks the password against the stored hash
func (c *Credential) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the stored hash
func (c *Credential) ChangePassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return shared.NewDomainError("HASH_FAILED", "Failed to hash password")
	}

	c.PasswordHash = string(hash)
	c.UpdatedAt = time.Now()

	return nil
}

// validatePassword validates password strength
func validatePassword(password string) error {
	if len(password) < 6 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 6 characters")
	}
	if len(password) > 72 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	return nil
}
