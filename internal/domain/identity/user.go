package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/sportshop/backend/internal/domain/shared"
)

// Role represents the access level of a user account
type Role string

const (
	RoleCustomer      Role = "customer"
	RoleAdministrator Role = "administrator"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,50}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// User represents a registered account.
// It is the aggregate root for identity operations. Credentials are
// kept on a separate record so profile reads never touch the hash.
type User struct {
	shared.BaseAggregateRoot
	Username   string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	Email      string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	FirstName  string     `gorm:"type:varchar(100);not null"`
	LastName   string     `gorm:"type:varchar(100);not null"`
	Patronymic string     `gorm:"type:varchar(100)"`
	BirthDate  *time.Time `gorm:"type:date"`
	Role       Role       `gorm:"type:varchar(20);not null;default:'customer'"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user account
func NewUser(username, email, firstName, lastName string, role Role) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if strings.TrimSpace(firstName) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "First name cannot be empty")
	}
	if strings.TrimSpace(lastName) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Last name cannot be empty")
	}
	if role != RoleCustomer && role != RoleAdministrator {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          strings.ToLower(strings.TrimSpace(username)),
		Email:             strings.ToLower(strings.TrimSpace(email)),
		FirstName:         strings.TrimSpace(firstName),
		LastName:          strings.TrimSpace(lastName),
		Role:              role,
	}, nil
}

// SetPatronymic sets the optional middle name
func (u *User) SetPatronymic(patronymic string) {
	u.Patronymic = strings.TrimSpace(patronymic)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// SetBirthDate sets the optional birth date
func (u *User) SetBirthDate(birthDate *time.Time) {
	u.BirthDate = birthDate
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// IsAdministrator returns true for the back-office account
func (u *User) IsAdministrator() bool {
	return u.Role == RoleAdministrator
}

// FullName returns "Last First Patronymic" with empty parts dropped
func (u *User) FullName() string {
	parts := []string{u.LastName, u.FirstName}
	if u.Patronymic != "" {
		parts = append(parts, u.Patronymic)
	}
	return strings.Join(parts, " ")
}

// validateUsername validates the login name
func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if !usernameRegex.MatchString(username) {
		return shared.NewDomainError("INVALID_USERNAME",
			"Username must be 3-50 characters of letters, digits, dots, underscores or hyphens")
	}
	return nil
}

// validateEmail validates the email address
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email address")
	}
	if len(email) > 100 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 100 characters")
	}
	return nil
}
