package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/miraclesolutionsdev/miracle-back/internal/service"
	"github.com/miraclesolutionsdev/miracle-back/pkg/validator"
)

type TenantHandler struct {
	tenantService *service.TenantService
	validator     *validator.Validator
}

func NewTenantHandler(tenantService *service.TenantService, validator *validator.Validator) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
		validator:     validator,
	}
}

// Get returns the authenticated tenant's store profile
// GET /auth/tenant
func (h *TenantHandler) Get(c *fiber.Ctx) error {
	tenant, err := h.tenantService.GetByID(c.Context(), tenantFromLocals(c))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tenant)
}

// Update edits the store profile fields
// PATCH /auth/tenant
func (h *TenantHandler) Update(c *fiber.Ctx) error {
	var req service.UpdateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	tenant, err := h.tenantService.UpdateProfile(c.Context(), tenantFromLocals(c), req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tenant)
}

// RotateAPIKey issues a fresh API key for the tenant, invalidating the old
// one. The plain key only ever appears in this response.
// POST /auth/tenant/api-key
func (h *TenantHandler) RotateAPIKey(c *fiber.Ctx) error {
	apiKey, err := h.tenantService.RotateAPIKey(c.Context(), tenantFromLocals(c))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"apiKey": apiKey,
	})
}
