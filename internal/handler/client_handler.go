package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/miraclesolutionsdev/miracle-back/internal/repository"
	"github.com/miraclesolutionsdev/miracle-back/internal/service"
	"github.com/miraclesolutionsdev/miracle-back/pkg/validator"
)

type ClientHandler struct {
	clientService *service.ClientService
	validator     *validator.Validator
}

func NewClientHandler(clientService *service.ClientService, validator *validator.Validator) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
		validator:     validator,
	}
}

// List returns the tenant's clients, legacy records included
// GET /clientes
func (h *ClientHandler) List(c *fiber.Ctx) error {
	filter := repository.ClientFilter{
		Estado: c.Query("estado"),
	}

	clients, err := h.clientService.List(c.Context(), tenantFromLocals(c), filter)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(clients)
}

// Get returns a single client
// GET /clientes/:id
func (h *ClientHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	client, err := h.clientService.GetByID(c.Context(), id, tenantFromLocals(c))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(client)
}

// Create registers a client for the tenant
// POST /clientes
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var req service.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	client, err := h.clientService.Create(c.Context(), tenantFromLocals(c), req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(client)
}

// Update edits a client
// PUT /clientes/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req service.UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	client, err := h.clientService.Update(c.Context(), id, tenantFromLocals(c), req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(client)
}

// Inactivar soft-deletes a client by marking it inactive
// PATCH /clientes/:id/inactivar
func (h *ClientHandler) Inactivar(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	client, err := h.clientService.Inactivar(c.Context(), id, tenantFromLocals(c))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(client)
}
