package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/miraclesolutionsdev/miracle-back/internal/apperr"
	"github.com/miraclesolutionsdev/miracle-back/internal/domain"
	"github.com/miraclesolutionsdev/miracle-back/internal/repository"
	"github.com/miraclesolutionsdev/miracle-back/pkg/hash"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Nombre   string `json:"nombre"`
}

type UpdateProfileRequest struct {
	Nombre   *string `json:"nombre"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	// Activo allows a user to deactivate their own account through the
	// profile path. The management path guards against this separately.
	Activo *bool `json:"activo"`
}

func (s *UserService) List(ctx context.Context, tenantID uuid.UUID) ([]*domain.User, error) {
	users, err := s.userRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return users, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Usuario no encontrado")
		}
		return nil, apperr.Internal(err)
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, tenantID uuid.UUID, req CreateUserRequest) (*domain.User, error) {
	emailNorm := NormalizeEmail(req.Email)

	if _, err := s.userRepo.GetByEmailAndTenant(ctx, emailNorm, tenantID); err == nil {
		return nil, apperr.Conflict("Ya existe un usuario con ese email en esta tienda")
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

	return user, nil
}

// SetActivo toggles a user's active flag through the management path. The
// original administrator can never be touched here, regardless of requester.
func (s *UserService) SetActivo(ctx context.Context, tenantID, targetID uuid.UUID, activo bool) (*domain.User, error) {
	user, err := s.userRepo.GetByIDAndTenant(ctx, targetID, tenantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Usuario no encontrado")
		}
		return nil, apperr.Internal(err)
	}

	original, err := s.isOriginalAdmin(ctx, tenantID, targetID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if original {
		return nil, apperr.Forbidden("No se puede deshabilitar al administrador original")
	}

	user.Activo = activo
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperr.Internal(err)
	}

	return user, nil
}

// Delete removes a user through the management path. The original
// administrator can never be deleted, and a user can never delete their own
// account here even when they are not the original administrator.
func (s *UserService) Delete(ctx context.Context, tenantID, requesterID, targetID uuid.UUID) error {
	user, err := s.userRepo.GetByIDAndTenant(ctx, targetID, tenantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Usuario no encontrado")
		}
		return apperr.Internal(err)
	}

	original, err := s.isOriginalAdmin(ctx, tenantID, targetID)
	if err != nil {
		return apperr.Internal(err)
	}
	if original {
		return apperr.Forbidden("No se puede eliminar al administrador original")
	}

	if user.ID == requesterID {
		return apperr.Forbidden("No puedes eliminarte a ti mismo")
	}

	if err := s.userRepo.Delete(ctx, user.ID, tenantID); err != nil {
		return apperr.Internal(err)
	}

	return nil
}

// UpdateProfile lets an authenticated user edit their own record. This path
// intentionally permits self-deactivation; the management path does not.
func (s *UserService) UpdateProfile(ctx context.Context, tenantID, userID uuid.UUID, req UpdateProfileRequest) (*domain.User, error) {
	user, err := s.userRepo.GetByIDAndTenant(ctx, userID, tenantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Usuario no encontrado")
		}
		return nil, apperr.Internal(err)
	}

	if req.Nombre != nil {
		user.Nombre = strings.TrimSpace(*req.Nombre)
	}
	if req.Password != nil {
		passwordHash, err := hash.HashPassword(*req.Password)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		user.PasswordHash = passwordHash
	}
	if req.Activo != nil {
		user.Activo = *req.Activo
	}

	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, apperr.Internal(err)
	}

	return user, nil
}

// isOriginalAdmin decides whether a user holds the protected original
// administrator status for a tenant.
//
// The persisted flag wins when anyone in the tenant carries it. Tenants
// created before the flag existed have no flagged user at all; for those the
// status falls back to the earliest-created user. Once a tenant has any
// explicitly flagged user (new tenants always flag their founder), the
// fallback never fires again. Isolated here so a one-time backfill migration
// can retire the fallback without touching the callers.
func (s *UserService) isOriginalAdmin(ctx context.Context, tenantID, userID uuid.UUID) (bool, error) {
	users, err := s.userRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return false, err
	}

	var target *domain.User
	anyFlagged := false
	for _, u := range users {
		if u.ID == userID {
			target = u
		}
		if u.IsOriginalAdmin {
			anyFlagged = true
		}
	}

	if target == nil {
		return false, nil
	}
	if target.IsOriginalAdmin {
		return true, nil
	}
	if anyFlagged {
		return false, nil
	}

	// Legacy tenant: the founding (earliest-created) user holds the role.
	return len(users) > 0 && users[0].ID == userID, nil
}
