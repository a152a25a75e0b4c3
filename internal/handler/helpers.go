package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/miraclesolutionsdev/miracle-back/internal/apperr"
)

// fail renders err as the standard error envelope. Internal causes are
// logged here and never reach the response body.
func fail(c *fiber.Ctx, err error) error {
	status := apperr.Status(err)
	if status == fiber.StatusInternalServerError {
		if cause := errors.Unwrap(err); cause != nil {
			log.Printf("[HANDLER] %s %s: %v", c.Method(), c.Path(), cause)
		} else {
			log.Printf("[HANDLER] %s %s: %v", c.Method(), c.Path(), err)
		}
	}
	return c.Status(status).JSON(fiber.Map{
		"error": apperr.Message(err),
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, errors.New("El id no es un UUID válido")
	}
	return id, nil
}

// tenantFromLocals reads the tenant resolved by the auth middleware.
func tenantFromLocals(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals("tenant_id").(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// userFromLocals reads the authenticated user id. It is uuid.Nil for
// requests authenticated with a tenant API key instead of a user token.
func userFromLocals(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals("user_id").(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
