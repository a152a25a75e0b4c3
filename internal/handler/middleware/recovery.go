package middleware

import (
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
)

// Recovery turns panics into 500 responses instead of dropping the
// connection. The panic value stays in the logs only.
func Recovery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC: %v\n%s", r, debug.Stack())

				if err := c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Error interno del servidor",
				}); err != nil {
					log.Printf("Error sending panic response: %v", err)
				}
			}
		}()

		return c.Next()
	}
}
