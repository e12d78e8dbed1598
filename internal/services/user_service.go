// internal/services/user_service.go
package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openshop/storefront-backend/internal/models"
	"github.com/openshop/storefront-backend/internal/repository"
)

type UserService struct {
	users *repository.Users
}

func NewUserService(users *repository.Users) *UserService {
	return &UserService{users: users}
}

type UpdateUserRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1"`
	Email         *string          `json:"email" validate:"omitempty,email"`
	Password      *string          `json:"password" validate:"omitempty,min=6"`
	Address       *string          `json:"address"`
	Role          *models.UserRole `json:"role" validate:"omitempty,oneof=user admin"`
	LoyaltyPoints *int             `json:"loyaltyPoints" validate:"omitempty,gte=0"`
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	userID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return s.users.FindByID(ctx, userID)
}

func (s *UserService) Update(ctx context.Context, id string, req *UpdateUserRequest) (*models.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, err
		}
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.LoyaltyPoints != nil {
		user.LoyaltyPoints = *req.LoyaltyPoints
	}
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	userID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	return s.users.Delete(ctx, userID)
}
