package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/miraclesolutionsdev/miracle-back/internal/service"
	"github.com/miraclesolutionsdev/miracle-back/pkg/validator"
)

type LeadHandler struct {
	leadService *service.LeadService
	validator   *validator.Validator
}

func NewLeadHandler(leadService *service.LeadService, validator *validator.Validator) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
		validator:   validator,
	}
}

// Create captures an inbound lead. Integrations authenticate with a tenant
// API key rather than a user token.
// POST /leads
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var req service.CreateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	lead, err := h.leadService.Create(c.Context(), tenantFromLocals(c), req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(lead)
}
