package handler

import (
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/miraclesolutionsdev/miracle-back/internal/repository"
	"github.com/miraclesolutionsdev/miracle-back/internal/service"
	"github.com/miraclesolutionsdev/miracle-back/pkg/validator"
)

type ProductHandler struct {
	productService *service.ProductService
	validator      *validator.Validator
}

func NewProductHandler(productService *service.ProductService, validator *validator.Validator) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator,
	}
}

// List returns the tenant's products, legacy records included
// GET /productos
func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter := repository.ProductFilter{
		Estado: c.Query("estado"),
		Tipo:   c.Query("tipo"),
	}

	products, err := h.productService.List(c.Context(), tenantFromLocals(c), filter)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(products)
}

// Get returns a single product
// GET /productos/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	product, err := h.productService.GetByID(c.Context(), id, tenantFromLocals(c))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(product)
}

// Create registers a product. Accepts JSON or multipart form data with
// image files under the "imagenes" field.
// POST /productos
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req service.CreateProductRequest

	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			return badRequest(c, "Formulario inválido")
		}
		req = service.CreateProductRequest{
			Nombre:          formValue(form, "nombre"),
			Descripcion:     formValue(form, "descripcion"),
			Tipo:            formValue(form, "tipo"),
			Estado:          formValue(form, "estado"),
			Usos:            form.Value["usos"],
			Caracteristicas: form.Value["caracteristicas"],
		}
		req.Precio, _ = strconv.ParseFloat(formValue(form, "precio"), 64)
		req.Stock, _ = strconv.Atoi(formValue(form, "stock"))

		files, err := readUploads(form.File["imagenes"])
		if err != nil {
			return badRequest(c, "No se pudieron leer los archivos adjuntos")
		}
		req.Files = files
	} else if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	product, err := h.productService.Create(c.Context(), tenantFromLocals(c), req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// Update edits a product. New image files replace the stored image list.
// PUT /productos/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req service.UpdateProductRequest

	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			return badRequest(c, "Formulario inválido")
		}
		if v := formValue(form, "nombre"); v != "" {
			req.Nombre = &v
		}
		if v := formValue(form, "descripcion"); v != "" {
			req.Descripcion = &v
		}
		if v := formValue(form, "tipo"); v != "" {
			req.Tipo = &v
		}
		if v := formValue(form, "estado"); v != "" {
			req.Estado = &v
		}
		if v := formValue(form, "precio"); v != "" {
			if precio, err := strconv.ParseFloat(v, 64); err == nil {
				req.Precio = &precio
			}
		}
		if v := formValue(form, "stock"); v != "" {
			if stock, err := strconv.Atoi(v); err == nil {
				req.Stock = &stock
			}
		}
		if usos, ok := form.Value["usos"]; ok {
			req.Usos = &usos
		}
		if caracteristicas, ok := form.Value["caracteristicas"]; ok {
			req.Caracteristicas = &caracteristicas
		}

		files, err := readUploads(form.File["imagenes"])
		if err != nil {
			return badRequest(c, "No se pudieron leer los archivos adjuntos")
		}
		req.Files = files
	} else if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cuerpo de la petición inválido")
	}

	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	product, err := h.productService.Update(c.Context(), id, tenantFromLocals(c), req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(product)
}

// Inactivar soft-deletes a product by marking it inactive
// PATCH /productos/:id/inactivar
func (h *ProductHandler) Inactivar(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	product, err := h.productService.Inactivar(c.Context(), id, tenantFromLocals(c))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(product)
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm)
}

func formValue(form *multipart.Form, key string) string {
	if values, ok := form.Value[key]; ok && len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}

func readUploads(headers []*multipart.FileHeader) ([]service.UploadFile, error) {
	var files []service.UploadFile
	for _, header := range headers {
		src, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, service.UploadFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return files, nil
}
