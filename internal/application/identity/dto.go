package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/sportshop/backend/internal/domain/identity"
	"github.com/sportshop/backend/internal/infrastructure/auth"
)

// UserDTO is the account representation returned to callers
type UserDTO struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Patronymic string    `json:"patronymic,omitempty"`
	BirthDate  string    `json:"birth_date,omitempty"`
	Role       string    `json:"role"`
}

// EmployeeDTO is one row of the staff roster
type EmployeeDTO struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Position string    `json:"position"`
	HireDate string    `json:"hire_date"`
}

// RegisterRequest carries the fields for a new account
type RegisterRequest struct {
	Username   string `json:"username" binding:"required,min=3,max=50"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6,max=72"`
	FirstName  string `json:"first_name" binding:"required,max=100"`
	LastName   string `json:"last_name" binding:"required,max=100"`
	Patronymic string `json:"patronymic" binding:"omitempty,max=100"`
	BirthDate  string `json:"birth_date" binding:"omitempty"` // 2006-01-02
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LoginResponse bundles the issued tokens with the account
type LoginResponse struct {
	User   *UserDTO        `json:"user"`
	Tokens *auth.TokenPair `json:"tokens"`
}

// AddEmployeeRequest carries the fields for a new staff member.
// HireDate accepts several legacy formats; see ParseHireDate.
type AddEmployeeRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Position string `json:"position" binding:"omitempty,max=100"`
	HireDate string `json:"hire_date" binding:"omitempty"`
}

func toUserDTO(u *identity.User) *UserDTO {
	dto := &UserDTO{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Patronymic: u.Patronymic,
		Role:       string(u.Role),
	}
	if u.BirthDate != nil {
		dto.BirthDate = u.BirthDate.Format(time.DateOnly)
	}
	return dto
}
