package handlers

import (
	"errors"

	"revas/internal/repositories"
	"revas/internal/services/user"
	"revas/internal/utils"
	"revas/internal/utils/pagination"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser registers a new staff account (admin only)
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req user.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	created, err := h.userService.Create(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrEmailTaken):
			return utils.Conflict(c, "Email already registered")
		case errors.Is(err, repositories.ErrPhoneTaken):
			return utils.Conflict(c, "Phone number already registered")
		case errors.Is(err, user.ErrInvalidInput):
			return utils.BadRequest(c, err.Error())
		default:
			return utils.InternalError(c, "Failed to create user")
		}
	}

	created.Password = ""
	return utils.Respond(c, fiber.StatusCreated, created)
}

// GetUser returns a single staff account
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	u, err := h.userService.Get(c.Context(), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalError(c, "Failed to get user")
	}

	u.Password = ""
	return utils.Success(c, u)
}

// ListUsers returns staff accounts
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	users, total, err := h.userService.List(c.Context(), p.Offset, p.Limit)
	if err != nil {
		return utils.InternalError(c, "Failed to list users")
	}
	for _, u := range users {
		u.Password = ""
	}

	p.Total = total
	return utils.Success(c, pagination.Response(p, users))
}

// UpdateUserStatus activates or suspends a staff account
func (h *UserHandler) UpdateUserStatus(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if err := h.userService.UpdateStatus(c.Context(), userID, input.Status); err != nil {
		switch {
		case errors.Is(err, repositories.ErrUserNotFound):
			return utils.NotFound(c, "User not found")
		case errors.Is(err, user.ErrInvalidInput):
			return utils.BadRequest(c, err.Error())
		default:
			return utils.InternalError(c, "Failed to update user status")
		}
	}

	return utils.Success(c, fiber.Map{"message": "User status updated"})
}
