package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/miraclesolutionsdev/miracle-back/internal/apperr"
	"github.com/miraclesolutionsdev/miracle-back/internal/domain"
	"github.com/miraclesolutionsdev/miracle-back/pkg/hash"
	"github.com/miraclesolutionsdev/miracle-back/pkg/jwt"
)

func newAuthFixture(t *testing.T) (*AuthService, *memTenantRepo, *memUserRepo) {
	t.Helper()
	tenantRepo := newMemTenantRepo()
	userRepo := newMemUserRepo()
	tokenService := jwt.NewTokenService("test-secret", time.Hour)
	return NewAuthService(userRepo, tenantRepo, tokenService, nil), tenantRepo, userRepo
}

func seedTenant(t *testing.T, repo *memTenantRepo, nombre, slug string) *domain.Tenant {
	t.Helper()
	tenant := &domain.Tenant{
		ID:        uuid.New(),
		Nombre:    nombre,
		Slug:      &slug,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), tenant))
	return tenant
}

func seedUser(t *testing.T, repo *memUserRepo, tenantID uuid.UUID, email, password string) *domain.User {
	t.Helper()
	passwordHash, err := hash.HashPassword(password)
	require.NoError(t, err)

	user := &domain.User{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Email:        email,
		PasswordHash: passwordHash,
		Nombre:       "Test",
		Activo:       true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestCreateStore(t *testing.T) {
	svc, tenantRepo, userRepo := newAuthFixture(t)

	resp, err := svc.CreateStore(context.Background(), CreateStoreRequest{
		NombreTienda: "Café Miracle",
		Email:        "Admin@Miracle.com",
		Password:     "secreto1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "admin@miracle.com", resp.User.Email)
	require.Equal(t, "Café Miracle", resp.User.TenantNombre)

	tenant, err := tenantRepo.GetBySlug(context.Background(), "cafe-miracle")
	require.NoError(t, err)
	require.Equal(t, tenant.ID, resp.User.TenantID)

	user, err := userRepo.GetByID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	require.True(t, user.IsOriginalAdmin)
	require.True(t, user.Activo)
}

func TestCreateStoreProbesSlugCollisions(t *testing.T) {
	svc, tenantRepo, _ := newAuthFixture(t)
	seedTenant(t, tenantRepo, "Miracle", "miracle")

	resp1, err := svc.CreateStore(context.Background(), CreateStoreRequest{
		NombreTienda: "Miracle",
		Email:        "uno@example.com",
		Password:     "secreto1",
	})
	require.NoError(t, err)

	resp2, err := svc.CreateStore(context.Background(), CreateStoreRequest{
		NombreTienda: "¡¡Miracle!!",
		Email:        "dos@example.com",
		Password:     "secreto1",
	})
	require.NoError(t, err)

	tenant1, err := tenantRepo.GetByID(context.Background(), resp1.User.TenantID)
	require.NoError(t, err)
	require.Equal(t, "miracle-1", *tenant1.Slug)

	tenant2, err := tenantRepo.GetByID(context.Background(), resp2.User.TenantID)
	require.NoError(t, err)
	require.Equal(t, "miracle-2", *tenant2.Slug)
}

func TestCreateStoreRejectsEmailRegisteredElsewhere(t *testing.T) {
	svc, tenantRepo, userRepo := newAuthFixture(t)
	existing := seedTenant(t, tenantRepo, "Otra Tienda", "otra-tienda")
	seedUser(t, userRepo, existing.ID, "dueno@example.com", "secreto1")

	_, err := svc.CreateStore(context.Background(), CreateStoreRequest{
		NombreTienda: "Nueva Tienda",
		Email:        "dueno@example.com",
		Password:     "secreto1",
	})
	require.Error(t, err)
	require.Equal(t, 409, apperr.Status(err))

	// The half-created tenant must be rolled back.
	_, err = tenantRepo.GetBySlug(context.Background(), "nueva-tienda")
	require.Error(t, err)
	require.Len(t, tenantRepo.tenants, 1)
}

func TestLogin(t *testing.T) {
	svc, tenantRepo, userRepo := newAuthFixture(t)
	tenant := seedTenant(t, tenantRepo, "Miracle", "miracle")
	seedUser(t, userRepo, tenant.ID, "admin@miracle.com", "secreto1")

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "  ADMIN@miracle.com ",
		Password: "secreto1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "Miracle", resp.User.TenantNombre)

	_, err = svc.Login(context.Background(), LoginRequest{
		Email:    "admin@miracle.com",
		Password: "incorrecta",
	})
	require.Error(t, err)
	require.Equal(t, 401, apperr.Status(err))
	require.Equal(t, "Credenciales inválidas", apperr.Message(err))

	_, err = svc.Login(context.Background(), LoginRequest{
		Email:    "nadie@example.com",
		Password: "secreto1",
	})
	require.Error(t, err)
	require.Equal(t, 401, apperr.Status(err))
}

func TestRegister(t *testing.T) {
	svc, tenantRepo, userRepo := newAuthFixture(t)
	tenant := seedTenant(t, tenantRepo, "Miracle", "miracle")
	seedUser(t, userRepo, tenant.ID, "admin@miracle.com", "secreto1")

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "nuevo@miracle.com",
		Password: "secreto1",
		Nombre:   "Nuevo",
		TenantID: tenant.ID.String(),
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, tenant.ID, resp.User.TenantID)

	user, err := userRepo.GetByID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	require.False(t, user.IsOriginalAdmin)

	_, err = svc.Register(context.Background(), RegisterRequest{
		Email:    "admin@miracle.com",
		Password: "secreto1",
		TenantID: tenant.ID.String(),
	})
	require.Error(t, err)
	require.Equal(t, 409, apperr.Status(err))

	_, err = svc.Register(context.Background(), RegisterRequest{
		Email:    "otro@miracle.com",
		Password: "secreto1",
		TenantID: uuid.NewString(),
	})
	require.Error(t, err)
	require.Equal(t, 404, apperr.Status(err))
}
