package service

import (
	"context"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *userService) CreateUser(ctx context.Context, fields models.UserFields) (models.User, error) {
	user, err := s.userRepository.CreateUser(ctx, fields.ToUser())
	if err != nil {
		return models.User{}, err
	}

	logger.FromContext(ctx).Info().Str("func", "*userService.CreateUser").Int64("user_id", user.ID).Msg("user created")
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return s.userRepository.GetUserByID(ctx, id)
}

func (s *userService) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	user, err := s.userRepository.UpdateUser(ctx, update)
	if err != nil {
		return models.User{}, err
	}

	logger.FromContext(ctx).Info().Str("func", "*userService.UpdateUser").Int64("user_id", user.ID).Msg("user updated")
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("func", "*userService.DeleteUser").Int64("user_id", id).Msg("user deleted")
	return nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}
