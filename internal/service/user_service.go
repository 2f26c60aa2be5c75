package service

import (
	"context"

	"toy-store-backend/internal/dto"
	"toy-store-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService struct {
	users UserRepository
}

func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetCurrentUser(ctx context.Context, actor model.Principal) (*model.User, error) {
	id, err := primitive.ObjectIDFromHex(actor.ID)
	if err != nil {
		return nil, ruleErr("Usuario inválido")
	}
	return s.users.FindByID(ctx, id)
}

// UpdateProfile actualiza solo los campos editables del perfil propio.
func (s *UserService) UpdateProfile(ctx context.Context, actor model.Principal, req dto.UpdateProfileRequest) (*model.User, error) {
	user, err := s.GetCurrentUser(ctx, actor)
	if err != nil {
		return nil, err
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.City != "" {
		user.City = req.City
	}
	if req.Country != "" {
		user.Country = req.Country
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetAll(ctx context.Context) ([]*model.User, error) {
	return s.users.FindAll(ctx)
}

// AdminUpdate permite al admin tocar username, email, phone e isAdmin.
func (s *UserService) AdminUpdate(ctx context.Context, userID string, req dto.AdminUpdateUserRequest) (*model.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ruleErr("Id de usuario inválido")
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, userID string) error {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ruleErr("Id de usuario inválido")
	}
	return s.users.Delete(ctx, id)
}
