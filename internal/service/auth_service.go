package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/miraclesolutionsdev/miracle-back/internal/apperr"
	"github.com/miraclesolutionsdev/miracle-back/internal/domain"
	"github.com/miraclesolutionsdev/miracle-back/internal/repository"
	"github.com/miraclesolutionsdev/miracle-back/pkg/email"
	"github.com/miraclesolutionsdev/miracle-back/pkg/hash"
	"github.com/miraclesolutionsdev/miracle-back/pkg/jwt"
)

type AuthService struct {
	userRepo     repository.UserRepository
	tenantRepo   repository.TenantRepository
	tokenService *jwt.TokenService
	emailService email.EmailService
}

func NewAuthService(
	userRepo repository.UserRepository,
	tenantRepo repository.TenantRepository,
	tokenService *jwt.TokenService,
	emailService email.EmailService,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tenantRepo:   tenantRepo,
		tokenService: tokenService,
		emailService: emailService,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Nombre   string `json:"nombre"`
	TenantID string `json:"tenantId" validate:"required,uuid"`
}

type CreateStoreRequest struct {
	NombreTienda string `json:"nombreTienda" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	Nombre       string `json:"nombre"`
}

type AuthUser struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Nombre       string    `json:"nombre"`
	TenantID     uuid.UUID `json:"tenantId"`
	TenantNombre string    `json:"tenantNombre"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// NormalizeEmail trims and lowercases an email address. Every email
// comparison in the system goes through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	emailNorm := NormalizeEmail(req.Email)

	user, err := s.userRepo.GetByEmail(ctx, emailNorm)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Unauthorized("Credenciales inválidas")
		}
		return nil, apperr.Internal(err)
	}

	valid, err := hash.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !valid {
		return nil, apperr.Unauthorized("Credenciales inválidas")
	}

	return s.respondWithToken(ctx, user)
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	emailNorm := NormalizeEmail(req.Email)

	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		return nil, apperr.Validation("tenantId no es válido")
	}

	if _, err := s.tenantRepo.GetByID(ctx, tenantID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Tienda no encontrada")
		}
		return nil, apperr.Internal(err)
	}

	if _, err := s.userRepo.GetByEmailAndTenant(ctx, emailNorm, tenantID); err == nil {
		return nil, apperr.Conflict("Ya existe un usuario con ese email en este tenant")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.Internal(err)
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Email:        emailNorm,
		PasswordHash: passwordHash,
		Nombre:       strings.TrimSpace(req.Nombre),
		Activo:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperr.Internal(err)
	}

	return s.respondWithToken(ctx, user)
}

// CreateStore bootstraps a new tenant together with its founding user. The
// founding user is stamped as original administrator at creation time, so
// the positional fallback never has to fire for tenants created here.
func (s *AuthService) CreateStore(ctx context.Context, req CreateStoreRequest) (*AuthResponse, error) {
	nombreTienda := strings.TrimSpace(req.NombreTienda)
	emailNorm := NormalizeEmail(req.Email)

	slug, err := s.uniqueSlug(ctx, Slugify(nombreTienda))
	if err != nil {
		return nil, apperr.Internal(err)
	}

	now := time.Now()
	tenant := &domain.Tenant{
		ID:        uuid.New(),
		Nombre:    nombreTienda,
		Slug:      &slug,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, apperr.Internal(err)
	}

	// Email collision checks happen after the tenant exists so the rollback
	// path below is the single cleanup point. Best effort: a crash between
	// the two creates can still leave an orphaned tenant.
	if _, err := s.userRepo.GetByEmailAndTenant(ctx, emailNorm, tenant.ID); err == nil {
		s.rollbackTenant(ctx, tenant.ID)
		return nil, apperr.Conflict("Ya existe un usuario con ese email en esta tienda")
	} else if !errors.Is(err, repository.ErrNotFound) {
		s.rollbackTenant(ctx, tenant.ID)
		return nil, apperr.Internal(err)
	}

	if _, err := s.userRepo.GetByEmail(ctx, emailNorm); err == nil {
		s.rollbackTenant(ctx, tenant.ID)
		return nil, apperr.Conflict("Ese email ya está registrado en otra tienda. Usa otro email o inicia sesión en la tienda correspondiente.")
	} else if !errors.Is(err, repository.ErrNotFound) {
		s.rollbackTenant(ctx, tenant.ID)
		return nil, apperr.Internal(err)
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		s.rollbackTenant(ctx, tenant.ID)
		return nil, apperr.Internal(err)
	}

	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		nombre = nombreTienda
	}

	user := &domain.User{
		ID:              uuid.New(),
		TenantID:        tenant.ID,
		Email:           emailNorm,
		PasswordHash:    passwordHash,
		Nombre:          nombre,
		Activo:          true,
		IsOriginalAdmin: true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.rollbackTenant(ctx, tenant.ID)
		return nil, apperr.Internal(err)
	}

	if s.emailService != nil {
		if err := s.emailService.SendWelcome(ctx, emailNorm, tenant.Nombre); err != nil {
			log.Printf("[AUTH_SERVICE] Failed to send welcome email to %s: %v", emailNorm, err)
		}
	}

	token, err := s.tokenService.Issue(user.ID, user.TenantID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &AuthResponse{
		Token: token,
		User: AuthUser{
			ID:           user.ID,
			Email:        user.Email,
			Nombre:       user.Nombre,
			TenantID:     user.TenantID,
			TenantNombre: tenant.Nombre,
		},
	}, nil
}

// uniqueSlug probes slug, slug-1, slug-2, … until an unused slug is found.
// The sequential probe is deterministic; a concurrent signup racing for the
// same slug is a narrow accepted window backed by the store's unique index.
func (s *AuthService) uniqueSlug(ctx context.Context, base string) (string, error) {
	slug := base
	for counter := 1; ; counter++ {
		_, err := s.tenantRepo.GetBySlug(ctx, slug)
		if errors.Is(err, repository.ErrNotFound) {
			return slug, nil
		}
		if err != nil {
			return "", err
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}

func (s *AuthService) rollbackTenant(ctx context.Context, tenantID uuid.UUID) {
	if err := s.tenantRepo.Delete(ctx, tenantID); err != nil {
		log.Printf("[AUTH_SERVICE] Failed to roll back tenant %s: %v", tenantID, err)
	}
}

func (s *AuthService) respondWithToken(ctx context.Context, user *domain.User) (*AuthResponse, error) {
	token, err := s.tokenService.Issue(user.ID, user.TenantID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	tenantNombre := ""
	if tenant, err := s.tenantRepo.GetByID(ctx, user.TenantID); err == nil {
		tenantNombre = tenant.Nombre
	}

	return &AuthResponse{
		Token: token,
		User: AuthUser{
			ID:           user.ID,
			Email:        user.Email,
			Nombre:       user.Nombre,
			TenantID:     user.TenantID,
			TenantNombre: tenantNombre,
		},
	}, nil
}
