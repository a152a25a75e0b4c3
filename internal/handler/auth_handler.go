package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/miraclesolutionsdev/miracle-back/internal/apperr"
	"github.com/miraclesolutionsdev/miracle-back/internal/service"
	"github.com/miraclesolutionsdev/miracle-back/pkg/validator"
)

type AuthHandler struct {
	authService *service.AuthService
	userService *service.UserService
	validator   *validator.Validator
}

func NewAuthHandler(authService *service.AuthService, userService *service.UserService, validator *validator.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		validator:   validator,
	}
}

// Login authenticates a user by email and password
// POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.authService.Login(c.Context(), req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// Register creates a user inside an existing tenant
// POST /auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req service.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.authService.Register(c.Context(), req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// CreateStore provisions a new tenant together with its founding admin user
// POST /auth/crear-tienda
func (h *AuthHandler) CreateStore(c *fiber.Ctx) error {
	var req service.CreateStoreRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	resp, err := h.authService.CreateStore(c.Context(), req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Me returns the authenticated user's profile
// GET /auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID := userFromLocals(c)
	if userID == uuid.Nil {
		return fail(c, apperr.Unauthorized("Se requiere una sesión de usuario"))
	}

	user, err := h.userService.GetByID(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// UpdateMe edits the authenticated user's own profile
// PATCH /auth/me
func (h *AuthHandler) UpdateMe(c *fiber.Ctx) error {
	userID := userFromLocals(c)
	if userID == uuid.Nil {
		return fail(c, apperr.Unauthorized("Se requiere una sesión de usuario"))
	}

	var req service.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	user, err := h.userService.UpdateProfile(c.Context(), tenantFromLocals(c), userID, req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}
