package report

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sportshop/backend/internal/domain/shared"
	"github.com/sportshop/backend/internal/domain/shopping"
)

// DailySalesDTO is one row of the sales report
type DailySalesDTO struct {
	Date       string `json:"date"`
	OrderCount int64  `json:"order_count"`
	Total      string `json:"total"`
}

// SalesReportRequest carries an optional inclusive date range
type SalesReportRequest struct {
	From string `form:"from" binding:"omitempty"` // 2006-01-02
	To   string `form:"to" binding:"omitempty"`   // 2006-01-02
}

// SalesService produces per-day sales aggregates for the back office.
// Completed orders only; the administrator account never contributes.
type SalesService struct {
	sales  shopping.SalesReportRepository
	logger *zap.Logger
}

// NewSalesService creates a new sales report service
func NewSalesService(sales shopping.SalesReportRepository, logger *zap.Logger) *SalesService {
	return &SalesService{
		sales:  sales,
		logger: logger,
	}
}

// DailySales returns order count and revenue per calendar day
func (s *SalesService) DailySales(ctx context.Context, req SalesReportRequest) ([]DailySalesDTO, error) {
	from, err := parseDate(req.From)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "From date must be in YYYY-MM-DD format")
	}
	to, err := parseDate(req.To)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "To date must be in YYYY-MM-DD format")
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Date range end precedes its start")
	}

	rows, err := s.sales.DailySales(ctx, from, to)
	if err != nil {
		return nil, err
	}

	dtos := make([]DailySalesDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, DailySalesDTO{
			Date:       row.Date.Format(time.DateOnly),
			OrderCount: row.OrderCount,
			Total:      row.Total.StringFixed(2),
		})
	}
	return dtos, nil
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
