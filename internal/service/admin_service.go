package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/stemsi/course-backend/internal/model"
	"github.com/stemsi/course-backend/internal/repository"
)

// ErrAdminNotFound is returned when no admin matches the lookup.
var ErrAdminNotFound = errors.New("admin not found")

// AdminService handles admin lookups for login and profile endpoints.
type AdminService struct {
	adminRepo *repository.AdminRepository
	roleRepo  *repository.RoleRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(adminRepo *repository.AdminRepository, roleRepo *repository.RoleRepository) *AdminService {
	return &AdminService{adminRepo: adminRepo, roleRepo: roleRepo}
}

// GetByEmail retrieves an admin by email (case-insensitive).
func (s *AdminService) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	a, err := s.adminRepo.GetByEmail(ctx, normalizeEmail(email))
	return a, adminErr(err)
}

// GetByID retrieves an admin by ID.
func (s *AdminService) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	a, err := s.adminRepo.GetByID(ctx, id)
	return a, adminErr(err)
}

// GetPermissions retrieves permission codes for an admin's role.
func (s *AdminService) GetPermissions(ctx context.Context, roleID int) ([]string, error) {
	return s.roleRepo.GetPermissionsByRoleID(ctx, roleID)
}

// Create creates a new admin. The email is stored lower-cased.
func (s *AdminService) Create(ctx context.Context, admin *model.Admin) error {
	admin.Email = normalizeEmail(admin.Email)
	return s.adminRepo.Create(ctx, admin)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func adminErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrAdminNotFound
	}
	return err
}
