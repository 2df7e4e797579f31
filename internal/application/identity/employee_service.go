package identity

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sportshop/backend/internal/domain/identity"
	"github.com/sportshop/backend/internal/domain/shared"
)

var slashDateRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2})$`)

// EmployeeService handles the staff roster
type EmployeeService struct {
	employees identity.EmployeeRepository
	users     identity.UserRepository
	logger    *zap.Logger
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(
	employees identity.EmployeeRepository,
	users identity.UserRepository,
	logger *zap.Logger,
) *EmployeeService {
	return &EmployeeService{
		employees: employees,
		users:     users,
		logger:    logger,
	}
}

// AddEmployee promotes an existing account to staff.
// The account is located by email; an account can hold one position.
func (s *EmployeeService) AddEmployee(ctx context.Context, req AddEmployeeRequest) (*EmployeeDTO, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	existing, err := s.employees.FindByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "This account is already an employee")
	}

	employee, err := identity.NewEmployee(user.ID, req.Position, ParseHireDate(req.HireDate))
	if err != nil {
		return nil, err
	}

	if err := s.employees.Save(ctx, employee); err != nil {
		return nil, err
	}

	s.logger.Info("employee added",
		zap.String("user_id", user.ID.String()),
		zap.String("position", employee.Position))

	return s.toEmployeeDTO(employee, user), nil
}

// ListEmployees returns the roster with profile data joined in
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]EmployeeDTO, error) {
	filter := shared.DefaultFilter()
	filter.PageSize = 1000
	filter.OrderBy = "hire_date"
	filter.OrderDir = "asc"

	employees, err := s.employees.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]EmployeeDTO, 0, len(employees))
	for i := range employees {
		user, err := s.users.FindByID(ctx, employees[i].UserID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			return nil, err
		}
		dtos = append(dtos, *s.toEmployeeDTO(&employees[i], user))
	}
	return dtos, nil
}

// RemoveEmployee deletes the roster entry for the account with this email
func (s *EmployeeService) RemoveEmployee(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	employee, err := s.employees.FindByUserID(ctx, user.ID)
	if err != nil {
		return err
	}
	return s.employees.Delete(ctx, employee.ID)
}

func (s *EmployeeService) toEmployeeDTO(e *identity.Employee, u *identity.User) *EmployeeDTO {
	return &EmployeeDTO{
		ID:       e.ID,
		UserID:   u.ID,
		FullName: u.FullName(),
		Email:    u.Email,
		Position: e.Position,
		HireDate: e.HireDate.Format(time.DateOnly),
	}
}

// ParseHireDate parses the hire date formats legacy data arrives in:
// "2006-01-02", "02.01.2006" and "dd/mm/yy". Two-digit years below 50
// land in the 2000s, the rest in the 1900s. Anything unparseable
// falls back to today.
func ParseHireDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now()
	}

	for _, layout := range []string{time.DateOnly, "02.01.2006"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}

	if m := slashDateRegex.FindStringSubmatch(value); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		// Reject normalized overflow like 31/02/20
		if t.Day() == day && int(t.Month()) == month {
			return t
		}
	}

	return time.Now()
}
