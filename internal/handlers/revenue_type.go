package handlers

import (
	"errors"

	"revas/internal/models"
	"revas/internal/repositories"
	"revas/internal/services/revenuetype"
	"revas/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type RevenueTypeHandler struct {
	revenueTypeService revenuetype.Service
}

func NewRevenueTypeHandler(revenueTypeService revenuetype.Service) *RevenueTypeHandler {
	return &RevenueTypeHandler{
		revenueTypeService: revenueTypeService,
	}
}

// CreateRevenueType registers a new revenue stream
func (h *RevenueTypeHandler) CreateRevenueType(c *fiber.Ctx) error {
	var rt models.RevenueType
	if err := c.BodyParser(&rt); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if err := h.revenueTypeService.Create(c.Context(), &rt); err != nil {
		if errors.Is(err, revenuetype.ErrInvalidInput) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalError(c, "Failed to create revenue type")
	}

	return utils.Respond(c, fiber.StatusCreated, rt)
}

// GetRevenueType returns a single revenue type
func (h *RevenueTypeHandler) GetRevenueType(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid revenue type ID")
	}

	rt, err := h.revenueTypeService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrRevenueTypeNotFound) {
			return utils.NotFound(c, "Revenue type not found")
		}
		return utils.InternalError(c, "Failed to get revenue type")
	}

	return utils.Success(c, rt)
}

// ListRevenueTypes returns the configured revenue streams
func (h *RevenueTypeHandler) ListRevenueTypes(c *fiber.Ctx) error {
	activeOnly := c.Query("active") == "true"

	types, err := h.revenueTypeService.List(c.Context(), activeOnly)
	if err != nil {
		return utils.InternalError(c, "Failed to list revenue types")
	}

	return utils.Success(c, types)
}

// UpdateRevenueType updates a revenue stream's configuration
func (h *RevenueTypeHandler) UpdateRevenueType(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid revenue type ID")
	}

	rt, err := h.revenueTypeService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrRevenueTypeNotFound) {
			return utils.NotFound(c, "Revenue type not found")
		}
		return utils.InternalError(c, "Failed to get revenue type")
	}

	if err := c.BodyParser(rt); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	rt.ID = id

	if err := h.revenueTypeService.Update(c.Context(), rt); err != nil {
		if errors.Is(err, revenuetype.ErrInvalidInput) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalError(c, "Failed to update revenue type")
	}

	return utils.Success(c, rt)
}

// DeactivateRevenueType retires a revenue stream
func (h *RevenueTypeHandler) DeactivateRevenueType(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid revenue type ID")
	}

	if err := h.revenueTypeService.Deactivate(c.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrRevenueTypeNotFound) {
			return utils.NotFound(c, "Revenue type not found")
		}
		return utils.InternalError(c, "Failed to deactivate revenue type")
	}

	return utils.Success(c, fiber.Map{"message": "Revenue type deactivated"})
}
