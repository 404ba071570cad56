package handlers

import (
	"errors"

	"revas/internal/repositories"
	"revas/internal/services/payment"
	"revas/internal/utils"
	"revas/internal/utils/pagination"
	"revas/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	paymentService payment.Service
}

func NewPaymentHandler(paymentService payment.Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreateAssessment raises a due amount against a shop for a fiscal year
func (h *PaymentHandler) CreateAssessment(c *fiber.Ctx) error {
	var req payment.AssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.Assessment(&req)
	if !v.Valid() {
		return utils.ValidationErrors(c, v.Errors)
	}

	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	created, err := h.paymentService.CreateAssessment(c.Context(), req, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrShopNotFound):
			return utils.NotFound(c, "Shop not found")
		case errors.Is(err, payment.ErrInvalidAmount),
			errors.Is(err, payment.ErrInvalidDueDate):
			return utils.BadRequest(c, err.Error())
		default:
			return utils.InternalError(c, "Failed to create assessment")
		}
	}

	return utils.Respond(c, fiber.StatusCreated, created)
}

// RecordPayment records an offline collection against an assessment
func (h *PaymentHandler) RecordPayment(c *fiber.Ctx) error {
	var req payment.RecordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.PaymentRecord(&req)
	if !v.Valid() {
		return utils.ValidationErrors(c, v.Errors)
	}

	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	updated, err := h.paymentService.RecordPayment(c.Context(), req, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrPaymentNotFound):
			return utils.NotFound(c, "Assessment not found")
		case errors.Is(err, payment.ErrInvalidAmount),
			errors.Is(err, payment.ErrOverpayment),
			errors.Is(err, payment.ErrAlreadyPaid):
			return utils.BadRequest(c, err.Error())
		default:
			return utils.InternalError(c, "Failed to record payment")
		}
	}

	return utils.Success(c, updated)
}

// PayOnline charges a card through the gateway and records the collection
func (h *PaymentHandler) PayOnline(c *fiber.Ctx) error {
	var req payment.OnlineRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.OnlinePayment(&req)
	if !v.Valid() {
		return utils.ValidationErrors(c, v.Errors)
	}

	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	updated, err := h.paymentService.PayOnline(c.Context(), req, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrPaymentNotFound):
			return utils.NotFound(c, "Assessment not found")
		case errors.Is(err, payment.ErrGatewayDeclined):
			return utils.Respond(c, fiber.StatusPaymentRequired, fiber.Map{"error": "Card declined"})
		case errors.Is(err, payment.ErrInvalidAmount),
			errors.Is(err, payment.ErrOverpayment),
			errors.Is(err, payment.ErrAlreadyPaid):
			return utils.BadRequest(c, err.Error())
		default:
			return utils.InternalError(c, "Failed to process payment")
		}
	}

	return utils.Success(c, updated)
}

// GetPayment returns a single payment record
func (h *PaymentHandler) GetPayment(c *fiber.Ctx) error {
	paymentID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid payment ID")
	}

	p, err := h.paymentService.Get(c.Context(), paymentID)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return utils.NotFound(c, "Payment not found")
		}
		return utils.InternalError(c, "Failed to get payment")
	}

	return utils.Success(c, p)
}

// ListShopPayments returns a shop's payment history
func (h *PaymentHandler) ListShopPayments(c *fiber.Ctx) error {
	shopID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid shop ID")
	}

	p := pagination.ParseFromRequest(c)

	payments, total, err := h.paymentService.ListByShop(c.Context(), shopID, p.Offset, p.Limit)
	if err != nil {
		return utils.InternalError(c, "Failed to list payments")
	}

	p.Total = total
	return utils.Success(c, pagination.Response(p, payments))
}
