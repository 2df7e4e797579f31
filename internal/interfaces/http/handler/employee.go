package handler

import (
	"github.com/gin-gonic/gin"

	appidentity "github.com/sportshop/backend/internal/application/identity"
)

// EmployeeHandler exposes the staff roster to administrators
type EmployeeHandler struct {
	BaseHandler
	employees *appidentity.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employees *appidentity.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

// AddEmployee handles POST /api/v1/admin/employees
func (h *EmployeeHandler) AddEmployee(c *gin.Context) {
	var req appidentity.AddEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "A valid email is required")
		return
	}

	employee, err := h.employees.AddEmployee(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, employee)
}

// ListEmployees handles GET /api/v1/admin/employees
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.employees.ListEmployees(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, employees)
}

// RemoveEmployee handles DELETE /api/v1/admin/employees/:email
func (h *EmployeeHandler) RemoveEmployee(c *gin.Context) {
	if err := h.employees.RemoveEmployee(c.Request.Context(), c.Param("email")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
