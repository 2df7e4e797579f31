package identity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sportshop/backend/internal/domain/shared"
)

// DefaultPosition is assigned when no position is specified
const DefaultPosition = "Менеджер"

// Employee links a user account to a staff position
type Employee struct {
	shared.BaseAggregateRoot
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Position string    `gorm:"type:varchar(100);not null"`
	HireDate time.Time `gorm:"type:date;not null"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}

// NewEmployee creates a new employee record.
// An empty position falls back to DefaultPosition, a zero hire date to today.
func NewEmployee(userID uuid.UUID, position string, hireDate time.Time) (*Employee, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Employee must reference a user")
	}

	position = strings.TrimSpace(position)
	if position == "" {
		position = DefaultPosition
	}
	if len(position) > 100 {
		return nil, shared.NewDomainError("INVALID_POSITION", "Position cannot exceed 100 characters")
	}

	if hireDate.IsZero() {
		hireDate = time.Now()
	}

	return &Employee{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Position:          position,
		HireDate:          hireDate.Truncate(24 * time.Hour),
	}, nil
}

// ChangePosition updates the employee's position
func (e *Employee) ChangePosition(position string) error {
	position = strings.TrimSpace(position)
	if position == "" {
		return shared.NewDomainError("INVALID_POSITION", "Position cannot be empty")
	}
	if len(position) > 100 {
		return shared.NewDomainError("INVALID_POSITION", "Position cannot exceed 100 characters")
	}

	e.Position = position
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}
