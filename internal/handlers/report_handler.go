package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/PoseidonKRL/ControlFin/internal/errors"
	"github.com/PoseidonKRL/ControlFin/internal/services"
)

// ReportHandler serves the aggregated report views.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ReportQuery restricts a report to a month window; empty means everything.
type ReportQuery struct {
	Month string `form:"month" binding:"omitempty,month_key"`
}

// MonthlySeries returns the income-vs-expense series.
// @Summary     Income vs expense per month
// @Tags        reports
// @Produce     json
// @Param       month query string false "Month bucket YYYY-MM, or all"
// @Success     200 {array} report.SeriesPoint
// @Failure     400 {object} ErrorResponse "Invalid query"
// @Router      /reports/monthly [get]
func (h *ReportHandler) MonthlySeries(c *gin.Context) {
	query, ok := bindReportQuery(c)
	if !ok {
		return
	}

	series, err := h.reportService.MonthlySeries(ownerKey(c), query.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"series": series})
}

// CategoryBreakdown returns the expense-by-category breakdown.
// @Summary     Expenses by category
// @Tags        reports
// @Produce     json
// @Param       month query string false "Month bucket YYYY-MM, or all"
// @Success     200 {array} report.CategorySlice
// @Failure     400 {object} ErrorResponse "Invalid query"
// @Router      /reports/categories [get]
func (h *ReportHandler) CategoryBreakdown(c *gin.Context) {
	query, ok := bindReportQuery(c)
	if !ok {
		return
	}

	breakdown, err := h.reportService.CategoryBreakdown(ownerKey(c), query.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": breakdown})
}

// BalanceEvolution returns the monthly net-balance series.
// @Summary     Monthly balance evolution
// @Tags        reports
// @Produce     json
// @Param       month query string false "Month bucket YYYY-MM, or all"
// @Success     200 {array} report.BalancePoint
// @Failure     400 {object} ErrorResponse "Invalid query"
// @Router      /reports/balance [get]
func (h *ReportHandler) BalanceEvolution(c *gin.Context) {
	query, ok := bindReportQuery(c)
	if !ok {
		return
	}

	balance, err := h.reportService.BalanceEvolution(ownerKey(c), query.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

func bindReportQuery(c *gin.Context) (ReportQuery, bool) {
	var query ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return query, false
	}
	return query, true
}
