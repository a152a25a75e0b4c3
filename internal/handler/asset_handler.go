package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/miraclesolutionsdev/miracle-back/internal/repository"
	"github.com/miraclesolutionsdev/miracle-back/internal/service"
	"github.com/miraclesolutionsdev/miracle-back/pkg/validator"
)

type AssetHandler struct {
	assetService *service.AssetService
	validator    *validator.Validator
}

func NewAssetHandler(assetService *service.AssetService, validator *validator.Validator) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
		validator:    validator,
	}
}

// List returns the tenant's audiovisual pieces, legacy records included
// GET /audiovisuales
func (h *AssetHandler) List(c *fiber.Ctx) error {
	filter := repository.AssetFilter{
		Estado: c.Query("estado"),
		Tipo:   c.Query("tipo"),
	}

	assets, err := h.assetService.List(c.Context(), tenantFromLocals(c), filter)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(assets)
}

// Create registers a piece with its file sent as multipart form data under
// the "archivo" field.
// POST /audiovisuales
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	if !isMultipart(c) {
		return badRequest(c, "Se requiere un formulario multipart con el campo archivo")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return badRequest(c, "Formulario inválido")
	}

	req := service.CreateAssetRequest{
		Tipo:            formValue(form, "tipo"),
		Plataforma:      formValue(form, "plataforma"),
		Resolucion:      formValue(form, "resolucion"),
		Duracion:        formValue(form, "duracion"),
		CampanaAsociada: formValue(form, "campanaAsociada"),
	}

	files, err := readUploads(form.File["archivo"])
	if err != nil {
		return badRequest(c, "No se pudo leer el archivo adjunto")
	}
	if len(files) > 0 {
		req.File = &files[0]
	}

	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	asset, err := h.assetService.Create(c.Context(), tenantFromLocals(c), req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(asset)
}

// Presign returns a presigned PUT URL so large files upload straight to
// object storage.
// POST /audiovisuales/presign
func (h *AssetHandler) Presign(c *fiber.Ctx) error {
	var req service.PresignAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	upload, err := h.assetService.PresignUpload(c.Context(), req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(upload)
}

// Confirm registers a piece whose file was already uploaded via a presigned
// URL.
// POST /audiovisuales/confirmar
func (h *AssetHandler) Confirm(c *fiber.Ctx) error {
	var req service.ConfirmAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	asset, err := h.assetService.ConfirmUpload(c.Context(), tenantFromLocals(c), req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(asset)
}

// UpdateEstado transitions a piece's review state
// PATCH /audiovisuales/:id/estado
func (h *AssetHandler) UpdateEstado(c *fiber.Ctx) error {
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

	asset, err := h.assetService.UpdateEstado(c.Context(), id, tenantFromLocals(c), req.Estado)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(asset)
}
