package service

import (
	"context"
	"strings"

	"society-admin-svc/internal/apiclient"
	"society-admin-svc/internal/models"
	"society-admin-svc/internal/repository"
	"society-admin-svc/pkg/logger"
)

// UserInput is the create/replace payload of a user. Password is only required on create.
type UserInput struct {
	Name      string `json:"name" form:"name" binding:"required,min=2,max=100" example:"Asha Kulkarni"`
	Email     string `json:"email" form:"email" binding:"required,email" example:"asha@example.com"`
	Phone     string `json:"phone,omitempty" form:"phone" binding:"omitempty,phone" example:"9876543210"`
	Password  string `json:"password,omitempty" form:"password" binding:"omitempty,min=8,max=72" example:"secret123"`
	Role      string `json:"role" form:"role" binding:"required,oneof=super_admin admin society_admin staff resident" example:"society_admin"`
	SocietyID *uint  `json:"societyId,omitempty" form:"societyId" example:"1"`
	Flat      string `json:"flat,omitempty" form:"flat" binding:"omitempty,max=20" example:"B-402"`
	IsActive  *bool  `json:"isActive,omitempty" form:"isActive" example:"true"`
}

// UserService defines the user operations of the panel
type UserService interface {
	ResourceService[models.User, UserInput]
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		resourceService: &resourceService[models.User, UserInput]{
			name:          "user",
			repo:          repo,
			validate:      validateUser,
			validatePatch: validateUserPatch,
			logger:        logger,
		},
	}
}

type userService struct {
	*resourceService[models.User, UserInput]
}

// Create registers a new account
func (s *userService) Create(ctx context.Context, input *UserInput, files []apiclient.File) (*models.User, error) {
	if input != nil && input.Password == "" {
		return nil, newValidationError("password", "is required")
	}
	return s.resourceService.Create(ctx, input, files)
}

// validateUser ties society-scoped roles to a society
func validateUser(input *UserInput) error {
	if models.IsSocietyScopedRole(input.Role) && (input.SocietyID == nil || *input.SocietyID == 0) {
		return newValidationError("societyId", "is required for role %s", input.Role)
	}
	return nil
}

// validateUserPatch checks a role change and keeps society-scoped roles tied to a
// society sent in the same patch
func validateUserPatch(fields map[string]interface{}) error {
	role, hasRole, err := patchString(fields, "role")
	if err != nil {
		return err
	}
	societyID, hasSociety, err := patchNumber(fields, "societyId")
	if err != nil {
		return err
	}
	if hasRole {
		if !models.IsValidRole(role) {
			return newValidationError("role", "must be one of %s", strings.Join(models.Roles, ", "))
		}
		if models.IsSocietyScopedRole(role) && (!hasSociety || societyID <= 0) {
			return newValidationError("societyId", "is required for role %s", role)
		}
	}
	password, hasPassword, err := patchString(fields, "password")
	if err != nil {
		return err
	}
	if hasPassword && (len(password) < 8 || len(password) > 72) {
		return newValidationError("password", "must be between 8 and 72 characters")
	}
	return nil
}
