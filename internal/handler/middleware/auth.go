package middleware

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/miraclesolutionsdev/miracle-back/internal/repository"
	"github.com/miraclesolutionsdev/miracle-back/pkg/jwt"
	"github.com/miraclesolutionsdev/miracle-back/pkg/keycache"
)

const unauthorizedMessage = "No autorizado. Inicia sesión o usa una API key válida."

// TenantResolver authenticates every protected request and resolves the
// acting tenant. A bearer value is tried as a JWT first and as a tenant API
// key second; the x-tenant-key header carries the key only when no bearer
// value is present. Downstream handlers read "tenant_id" (always set) and "user_id"
// (uuid.Nil for API key requests) from locals.
func TenantResolver(tokenService *jwt.TokenService, tenantRepo repository.TenantRepository, keyCache *keycache.KeyCache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		bearer := bearerValue(c.Get("Authorization"))

		if bearer != "" {
			if claims, err := tokenService.Verify(bearer); err == nil {
				c.Locals("user_id", claims.UserID)
				c.Locals("tenant_id", claims.TenantID)
				return c.Next()
			}
		}

		apiKey := bearer
		if apiKey == "" {
			apiKey = strings.TrimSpace(c.Get("x-tenant-key"))
		}

		if apiKey != "" {
			tenantID, err := resolveAPIKey(c, apiKey, tenantRepo, keyCache)
			if err == nil {
				c.Locals("tenant_id", tenantID)
				return c.Next()
			}
			if !errors.Is(err, repository.ErrNotFound) {
				log.Printf("[AUTH_MIDDLEWARE] api key lookup failed: %v", err)
			}
		}

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": unauthorizedMessage,
		})
	}
}

func bearerValue(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func resolveAPIKey(c *fiber.Ctx, apiKey string, tenantRepo repository.TenantRepository, keyCache *keycache.KeyCache) (uuid.UUID, error) {
	if keyCache != nil {
		if tenantID, err := keyCache.Get(c.Context(), apiKey); err == nil {
			return tenantID, nil
		} else if !errors.Is(err, keycache.ErrMiss) {
			log.Printf("[AUTH_MIDDLEWARE] key cache read failed: %v", err)
		}
	}

	tenant, err := tenantRepo.GetByAPIKey(c.Context(), apiKey)
	if err != nil {
		return uuid.Nil, err
	}

	if keyCache != nil {
		if err := keyCache.Set(c.Context(), apiKey, tenant.ID); err != nil {
			log.Printf("[AUTH_MIDDLEWARE] key cache write failed: %v", err)
		}
	}

	return tenant.ID, nil
}
