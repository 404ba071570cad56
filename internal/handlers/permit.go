package handlers

import (
	"errors"

	"revas/internal/repositories"
	"revas/internal/services/assessment"
	"revas/internal/services/permit"
	"revas/internal/utils"
	"revas/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type PermitHandler struct {
	permitService permit.Service
}

func NewPermitHandler(permitService permit.Service) *PermitHandler {
	return &PermitHandler{
		permitService: permitService,
	}
}

// IssuePermit issues an operating or signage permit for a shop
func (h *PermitHandler) IssuePermit(c *fiber.Ctx) error {
	var req permit.IssueRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.PermitIssue(&req)
	if !v.Valid() {
		return utils.ValidationErrors(c, v.Errors)
	}

	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	created, err := h.permitService.Issue(c.Context(), req, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrShopNotFound):
			return utils.NotFound(c, "Shop not found")
		case errors.Is(err, permit.ErrInvalidPermitType),
			errors.Is(err, assessment.ErrInvalidSignageType),
			errors.Is(err, assessment.ErrInvalidShopSize):
			return utils.BadRequest(c, err.Error())
		default:
			return utils.InternalError(c, "Failed to issue permit")
		}
	}

	return utils.Respond(c, fiber.StatusCreated, created)
}

// RenewPermit extends a permit for another validity period
func (h *PermitHandler) RenewPermit(c *fiber.Ctx) error {
	permitID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid permit ID")
	}

	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	renewed, err := h.permitService.Renew(c.Context(), permitID, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrPermitNotFound):
			return utils.NotFound(c, "Permit not found")
		case errors.Is(err, permit.ErrPermitNotActive):
			return utils.BadRequest(c, err.Error())
		default:
			return utils.InternalError(c, "Failed to renew permit")
		}
	}

	return utils.Success(c, renewed)
}

// GetPermit returns a single permit
func (h *PermitHandler) GetPermit(c *fiber.Ctx) error {
	permitID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid permit ID")
	}

	p, err := h.permitService.Get(c.Context(), permitID)
	if err != nil {
		if errors.Is(err, repositories.ErrPermitNotFound) {
			return utils.NotFound(c, "Permit not found")
		}
		return utils.InternalError(c, "Failed to get permit")
	}

	return utils.Success(c, p)
}

// ListShopPermits returns all permits held by a shop
func (h *PermitHandler) ListShopPermits(c *fiber.Ctx) error {
	shopID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid shop ID")
	}

	permits, err := h.permitService.ListByShop(c.Context(), shopID)
	if err != nil {
		return utils.InternalError(c, "Failed to list permits")
	}

	return utils.Success(c, permits)
}

// ExpireDuePermits flips active permits past their expiry date to Expired
func (h *PermitHandler) ExpireDuePermits(c *fiber.Ctx) error {
	expired, err := h.permitService.ExpireDue(c.Context())
	if err != nil {
		return utils.InternalError(c, "Failed to expire permits")
	}

	return utils.Success(c, fiber.Map{"expired": expired})
}
