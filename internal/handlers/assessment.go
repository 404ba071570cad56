package handlers

import (
	"errors"
	"strconv"

	"revas/internal/repositories"
	"revas/internal/services/assessment"
	"revas/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AssessmentHandler struct {
	assessmentService assessment.Service
}

func NewAssessmentHandler(assessmentService assessment.Service) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentService: assessmentService,
	}
}

// GetFees itemizes the annual fees for a shop at current rates
func (h *AssessmentHandler) GetFees(c *fiber.Ctx) error {
	shopID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid shop ID")
	}

	fees, err := h.assessmentService.Fees(c.Context(), shopID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrShopNotFound):
			return utils.NotFound(c, "Shop not found")
		case errors.Is(err, assessment.ErrInvalidShopSize),
			errors.Is(err, assessment.ErrMissingBusinessType),
			errors.Is(err, assessment.ErrMissingWard):
			return utils.BadRequest(c, err.Error())
		default:
			return utils.InternalError(c, "Failed to compute fees")
		}
	}

	return utils.Success(c, fees)
}

// GetTotalDue computes what a shop owes for an assessment year
func (h *AssessmentHandler) GetTotalDue(c *fiber.Ctx) error {
	shopID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid shop ID")
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year <= 0 {
		return utils.BadRequest(c, "A valid assessment year is required")
	}

	result, err := h.assessmentService.TotalDue(c.Context(), shopID, year)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrShopNotFound):
			return utils.NotFound(c, "Shop not found")
		case errors.Is(err, assessment.ErrInvalidYear),
			errors.Is(err, assessment.ErrInvalidShopSize):
			return utils.BadRequest(c, err.Error())
		default:
			return utils.InternalError(c, "Failed to compute total due")
		}
	}

	return utils.Success(c, result)
}

// ApplyPenalties accrues overdue penalties onto a shop's unpaid assessments
func (h *AssessmentHandler) ApplyPenalties(c *fiber.Ctx) error {
	shopID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid shop ID")
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year <= 0 {
		return utils.BadRequest(c, "A valid assessment year is required")
	}

	updated, err := h.assessmentService.ApplyPenalties(c.Context(), shopID, year)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrShopNotFound):
			return utils.NotFound(c, "Shop not found")
		case errors.Is(err, assessment.ErrInvalidYear):
			return utils.BadRequest(c, err.Error())
		default:
			return utils.InternalError(c, "Failed to apply penalties")
		}
	}

	return utils.Success(c, fiber.Map{
		"shop_id":         shopID,
		"assessment_year": year,
		"updated":         updated,
	})
}
