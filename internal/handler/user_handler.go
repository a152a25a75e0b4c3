package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/miraclesolutionsdev/miracle-back/internal/service"
	"github.com/miraclesolutionsdev/miracle-back/pkg/validator"
)

type UserHandler struct {
	userService *service.UserService
	validator   *validator.Validator
}

func NewUserHandler(userService *service.UserService, validator *validator.Validator) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator,
	}
}

// List returns the tenant's users ordered by creation date
// GET /usuarios
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List(c.Context(), tenantFromLocals(c))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(users)
}

// Create adds a user to the tenant
// POST /usuarios
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	user, err := h.userService.Create(c.Context(), tenantFromLocals(c), req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// SetActivo enables or disables a user account
// PATCH /usuarios/:id
func (h *UserHandler) SetActivo(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req struct {
		Activo *bool `json:"activo" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}
	if req.Activo == nil {
		return badRequest(c, "activo es obligatorio")
	}

	user, err := h.userService.SetActivo(c.Context(), tenantFromLocals(c), id, *req.Activo)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// Delete removes a user from the tenant
// DELETE /usuarios/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.userService.Delete(c.Context(), tenantFromLocals(c), userFromLocals(c), id); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Usuario eliminado",
	})
}
