package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/miraclesolutionsdev/miracle-back/internal/repository"
	"github.com/miraclesolutionsdev/miracle-back/internal/service"
	"github.com/miraclesolutionsdev/miracle-back/pkg/validator"
)

type CampaignHandler struct {
	campaignService *service.CampaignService
	validator       *validator.Validator
}

func NewCampaignHandler(campaignService *service.CampaignService, validator *validator.Validator) *CampaignHandler {
	return &CampaignHandler{
		campaignService: campaignService,
		validator:       validator,
	}
}

// List returns the tenant's campaigns
// GET /campanas
func (h *CampaignHandler) List(c *fiber.Ctx) error {
	filter := repository.CampaignFilter{
		Estado: c.Query("estado"),
	}

	campaigns, err := h.campaignService.List(c.Context(), tenantFromLocals(c), filter)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(campaigns)
}

// Get returns a single campaign
// GET /campanas/:id
func (h *CampaignHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	campaign, err := h.campaignService.GetByID(c.Context(), id, tenantFromLocals(c))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(campaign)
}

// Create registers a campaign
// POST /campanas
func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	var req service.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	campaign, err := h.campaignService.Create(c.Context(), tenantFromLocals(c), req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(campaign)
}

// Update edits a campaign
// PUT /campanas/:id
func (h *CampaignHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req service.UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	campaign, err := h.campaignService.Update(c.Context(), id, tenantFromLocals(c), req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(campaign)
}

// UpdateEstado transitions a campaign's lifecycle state
// PATCH /campanas/:id/estado
func (h *CampaignHandler) UpdateEstado(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req struct {
		Estado string `json:"estado"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	campaign, err := h.campaignService.UpdateEstado(c.Context(), id, tenantFromLocals(c), req.Estado)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(campaign)
}
