package handlers

import (
	"errors"
	"strconv"

	"revas/internal/repositories"
	"revas/internal/services/compliance"
	"revas/internal/services/shop"
	"revas/internal/utils"
	"revas/internal/utils/pagination"
	"revas/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type ShopHandler struct {
	shopService       shop.Service
	complianceService compliance.Service
}

func NewShopHandler(shopService shop.Service, complianceService compliance.Service) *ShopHandler {
	return &ShopHandler{
		shopService:       shopService,
		complianceService: complianceService,
	}
}

// RegisterShop puts a new shop on the revenue roll
func (h *ShopHandler) RegisterShop(c *fiber.Ctx) error {
	var req shop.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.ShopRegistration(&req)
	if !v.Valid() {
		return utils.ValidationErrors(c, v.Errors)
	}

	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	created, err := h.shopService.Register(c.Context(), req, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrShopNumberTaken) {
			return utils.Conflict(c, "Shop number already registered")
		}
		if errors.Is(err, shop.ErrInvalidInput) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalError(c, "Failed to register shop")
	}

	return utils.Respond(c, fiber.StatusCreated, created)
}

// GetShop returns a single shop by ID
func (h *ShopHandler) GetShop(c *fiber.Ctx) error {
	shopID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid shop ID")
	}

	s, err := h.shopService.Get(c.Context(), shopID)
	if err != nil {
		if errors.Is(err, repositories.ErrShopNotFound) {
			return utils.NotFound(c, "Shop not found")
		}
		return utils.InternalError(c, "Failed to get shop")
	}

	return utils.Success(c, s)
}

// ListShops returns shops matching the filter query parameters
func (h *ShopHandler) ListShops(c *fiber.Ctx) error {
	filter := repositories.ShopFilter{
		Ward:             c.Query("ward"),
		BusinessType:     c.Query("business_type"),
		ComplianceStatus: c.Query("compliance_status"),
		Status:           c.Query("status"),
	}

	p := pagination.ParseFromRequest(c)

	shops, total, err := h.shopService.List(c.Context(), filter, p.Offset, p.Limit)
	if err != nil {
		return utils.InternalError(c, "Failed to list shops")
	}

	p.Total = total
	return utils.Success(c, pagination.Response(p, shops))
}

// UpdateShop updates a shop's registered details
func (h *ShopHandler) UpdateShop(c *fiber.Ctx) error {
	shopID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid shop ID")
	}

	existing, err := h.shopService.Get(c.Context(), shopID)
	if err != nil {
		if errors.Is(err, repositories.ErrShopNotFound) {
			return utils.NotFound(c, "Shop not found")
		}
		return utils.InternalError(c, "Failed to get shop")
	}

	var input struct {
		BusinessName string `json:"business_name"`
		BusinessType string `json:"business_type"`
		ShopSize     string `json:"shop_size_category"`
		Ward         string `json:"ward"`
		Address      string `json:"address"`
		OwnerName    string `json:"owner_name"`
		OwnerPhone   string `json:"owner_phone"`
		OwnerEmail   string `json:"owner_email"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if input.BusinessName != "" {
		existing.BusinessName = input.BusinessName
	}
	if input.BusinessType != "" {
		existing.BusinessType = input.BusinessType
	}
	if input.ShopSize != "" {
		existing.ShopSizeCategory = input.ShopSize
	}
	if input.Ward != "" {
		existing.Ward = input.Ward
	}
	if input.Address != "" {
		existing.Address = input.Address
	}
	if input.OwnerName != "" {
		existing.OwnerName = input.OwnerName
	}
	if input.OwnerPhone != "" {
		existing.OwnerPhone = input.OwnerPhone
	}
	if input.OwnerEmail != "" {
		existing.OwnerEmail = input.OwnerEmail
	}

	if err := h.shopService.Update(c.Context(), existing); err != nil {
		if errors.Is(err, shop.ErrInvalidInput) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalError(c, "Failed to update shop")
	}

	return utils.Success(c, existing)
}

// DeactivateShop removes a shop from the active roll
func (h *ShopHandler) DeactivateShop(c *fiber.Ctx) error {
	shopID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid shop ID")
	}

	if err := h.shopService.Deactivate(c.Context(), shopID); err != nil {
		if errors.Is(err, repositories.ErrShopNotFound) {
			return utils.NotFound(c, "Shop not found")
		}
		return utils.InternalError(c, "Failed to deactivate shop")
	}

	return utils.Success(c, fiber.Map{"message": "Shop deactivated"})
}

// GetComplianceStatus derives a shop's compliance status without persisting it
func (h *ShopHandler) GetComplianceStatus(c *fiber.Ctx) error {
	shopID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid shop ID")
	}

	status, err := h.complianceService.Classify(c.Context(), shopID)
	if err != nil {
		if errors.Is(err, repositories.ErrShopNotFound) {
			return utils.NotFound(c, "Shop not found")
		}
		return utils.InternalError(c, "Failed to classify shop")
	}

	return utils.Success(c, fiber.Map{
		"shop_id":           shopID,
		"compliance_status": status,
	})
}

// RefreshComplianceStatus classifies a shop and writes the result back
func (h *ShopHandler) RefreshComplianceStatus(c *fiber.Ctx) error {
	shopID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid shop ID")
	}

	status, err := h.complianceService.Refresh(c.Context(), shopID)
	if err != nil {
		if errors.Is(err, repositories.ErrShopNotFound) {
			return utils.NotFound(c, "Shop not found")
		}
		return utils.InternalError(c, "Failed to refresh compliance status")
	}

	return utils.Success(c, fiber.Map{
		"shop_id":           shopID,
		"compliance_status": status,
	})
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
