package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sportshop/backend/internal/application/report"
)

// ReportHandler exposes sales reports to administrators
type ReportHandler struct {
	BaseHandler
	sales *report.SalesService
}

// NewReportHandler creates a new report handler
func NewReportHandler(sales *report.SalesService) *ReportHandler {
	return &ReportHandler{sales: sales}
}

// DailySales handles GET /api/v1/admin/reports/daily-sales
func (h *ReportHandler) DailySales(c *gin.Context) {
	var req report.SalesReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid report parameters: "+err.Error())
		return
	}

	rows, err := h.sales.DailySales(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}
