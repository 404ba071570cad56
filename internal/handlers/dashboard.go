package handlers

import (
	"strconv"
	"time"

	"revas/internal/services/dashboard"
	"revas/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetRevenueSummary aggregates collections for an assessment year
func (h *DashboardHandler) GetRevenueSummary(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Query("year", strconv.Itoa(time.Now().Year())))
	if err != nil || year <= 0 {
		return utils.BadRequest(c, "A valid assessment year is required")
	}

	summary, err := h.dashboardService.GetRevenueSummary(c.Context(), year)
	if err != nil {
		return utils.InternalError(c, "Failed to get revenue summary")
	}

	return utils.Success(c, summary)
}

// GetComplianceBreakdown counts active shops by compliance status
func (h *DashboardHandler) GetComplianceBreakdown(c *fiber.Ctx) error {
	breakdown, err := h.dashboardService.GetComplianceBreakdown(c.Context())
	if err != nil {
		return utils.InternalError(c, "Failed to get compliance breakdown")
	}

	return utils.Success(c, breakdown)
}

// GetCollectionsOverTime returns daily collection totals for a date range
func (h *DashboardHandler) GetCollectionsOverTime(c *fiber.Ctx) error {
	endDate := time.Now()
	startDate := endDate.AddDate(0, -1, 0)

	if s := c.Query("start_date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return utils.BadRequest(c, "start_date must be YYYY-MM-DD")
		}
		startDate = parsed
	}
	if e := c.Query("end_date"); e != "" {
		parsed, err := time.Parse("2006-01-02", e)
		if err != nil {
			return utils.BadRequest(c, "end_date must be YYYY-MM-DD")
		}
		endDate = parsed
	}

	collections, err := h.dashboardService.GetCollectionsOverTime(c.Context(), startDate, endDate)
	if err != nil {
		return utils.InternalError(c, "Failed to get collections")
	}

	return utils.Success(c, collections)
}
