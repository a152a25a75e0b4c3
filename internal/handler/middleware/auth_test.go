package middleware

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/miraclesolutionsdev/miracle-back/internal/domain"
	"github.com/miraclesolutionsdev/miracle-back/internal/repository"
	"github.com/miraclesolutionsdev/miracle-back/pkg/jwt"
)

type fakeTenantRepo struct {
	tenant *domain.Tenant
}

func (r *fakeTenantRepo) Create(context.Context, *domain.Tenant) error { return nil }
func (r *fakeTenantRepo) Update(context.Context, *domain.Tenant) error { return nil }
func (r *fakeTenantRepo) Delete(context.Context, uuid.UUID) error      { return nil }

func (r *fakeTenantRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Tenant, error) {
	if r.tenant != nil && r.tenant.ID == id {
		return r.tenant, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeTenantRepo) GetBySlug(_ context.Context, slug string) (*domain.Tenant, error) {
	if r.tenant != nil && r.tenant.Slug != nil && *r.tenant.Slug == slug {
		return r.tenant, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeTenantRepo) GetByAPIKey(_ context.Context, apiKey string) (*domain.Tenant, error) {
	if r.tenant != nil && r.tenant.APIKey != nil && *r.tenant.APIKey == apiKey {
		return r.tenant, nil
	}
	return nil, repository.ErrNotFound
}

type resolved struct {
	UserID   string `json:"userId"`
	TenantID string `json:"tenantId"`
}

func newTestApp(tokenService *jwt.TokenService, tenantRepo repository.TenantRepository) *fiber.App {
	app := fiber.New()
	app.Get("/protegido", TenantResolver(tokenService, tenantRepo, nil), func(c *fiber.Ctx) error {
		out := resolved{}
		if id, ok := c.Locals("user_id").(uuid.UUID); ok {
			out.UserID = id.String()
		}
		if id, ok := c.Locals("tenant_id").(uuid.UUID); ok {
			out.TenantID = id.String()
		}
		return c.JSON(out)
	})
	return app
}

func TestTenantResolverAcceptsJWT(t *testing.T) {
	tokenService := jwt.NewTokenService("test-secret", time.Hour)
	userID := uuid.New()
	tenantID := uuid.New()

	token, err := tokenService.Issue(userID, tenantID)
	require.NoError(t, err)

	app := newTestApp(tokenService, &fakeTenantRepo{})

	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out resolved
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, userID.String(), out.UserID)
	require.Equal(t, tenantID.String(), out.TenantID)
}

func TestTenantResolverAcceptsAPIKeyAsBearer(t *testing.T) {
	tokenService := jwt.NewTokenService("test-secret", time.Hour)
	apiKey := "mk_0123456789abcdef"
	tenantID := uuid.New()
	repo := &fakeTenantRepo{tenant: &domain.Tenant{ID: tenantID, APIKey: &apiKey}}

	app := newTestApp(tokenService, repo)

	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out resolved
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, tenantID.String(), out.TenantID)
	require.Empty(t, out.UserID)
}

func TestTenantResolverAcceptsTenantKeyHeader(t *testing.T) {
	tokenService := jwt.NewTokenService("test-secret", time.Hour)
	apiKey := "mk_fedcba9876543210"
	tenantID := uuid.New()
	repo := &fakeTenantRepo{tenant: &domain.Tenant{ID: tenantID, APIKey: &apiKey}}

	app := newTestApp(tokenService, repo)

	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("x-tenant-key", "  "+apiKey+"  ")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out resolved
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, tenantID.String(), out.TenantID)
}

func TestTenantResolverRejectsWithSpanishMessage(t *testing.T) {
	tokenService := jwt.NewTokenService("test-secret", time.Hour)
	app := newTestApp(tokenService, &fakeTenantRepo{})

	for _, tc := range []struct {
		name   string
		header string
		value  string
	}{
		{"no credentials", "", ""},
		{"garbage bearer", "Authorization", "Bearer basura"},
		{"unknown api key", "x-tenant-key", "mk_desconocida"},
		{"malformed authorization", "Authorization", "Token abc"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protegido", nil)
			if tc.header != "" {
				req.Header.Set(tc.header, tc.value)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			require.Contains(t, string(body), "No autorizado")
		})
	}
}

func TestTenantResolverBearerWinsOverTenantKeyHeader(t *testing.T) {
	tokenService := jwt.NewTokenService("test-secret", time.Hour)
	apiKey := "mk_valida"
	tenantID := uuid.New()
	repo := &fakeTenantRepo{tenant: &domain.Tenant{ID: tenantID, APIKey: &apiKey}}

	app := newTestApp(tokenService, repo)

	// The bearer value is the key candidate; a stray x-tenant-key header
	// must not shadow it.
	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("x-tenant-key", "mk_basura")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out resolved
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, tenantID.String(), out.TenantID)
}

func TestTenantResolverExpiredTokenDoesNotFallBackToHeaderKey(t *testing.T) {
	tokenService := jwt.NewTokenService("test-secret", -time.Minute)
	apiKey := "mk_llave"
	tenantID := uuid.New()
	repo := &fakeTenantRepo{tenant: &domain.Tenant{ID: tenantID, APIKey: &apiKey}}

	app := newTestApp(tokenService, repo)

	// With a bearer present the x-tenant-key header is ignored, so an
	// expired token is tried as an API key, misses, and the request fails.
	expired, err := tokenService.Issue(uuid.New(), uuid.New())
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	req.Header.Set("x-tenant-key", apiKey)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
