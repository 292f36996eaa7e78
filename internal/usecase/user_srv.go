package usecase

import (
	"context"
	"fmt"
	"time"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/data/repository"
	"shop-backend/internal/dto/request"
	"shop-backend/internal/dto/response"
	"shop-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	CreateUser(ctx context.Context, req *request.UserCreateRequest) (*response.UserResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*response.UserResponse, error)
	GetAllUsers(ctx context.Context, list *request.ListRequest) (*response.PaginatedResponse[response.UserResponse], error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *request.UserUpdateRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewUserService(repo *repository.Repository, config *utils.Config, log *zap.Logger) UserService {
	return &userService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "user")),
	}
}

func (s *userService) CreateUser(ctx context.Context, req *request.UserCreateRequest) (*response.UserResponse, error) {
	hashedPassword, err := utils.HashPassword(req.Password, s.config.App.BcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := entity.Role(req.Role)
	if req.Role == "" {
		role = entity.RoleRegularUser
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if err == entity.ErrEmailExists {
			return nil, err
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	result := response.UserToResponse(user)
	return &result, nil
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", id.String()))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, entity.ErrUserNotFound
	}

	result := response.UserToResponse(user)
	return &result, nil
}

func (s *userService) GetAllUsers(ctx context.Context, list *request.ListRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	limit := list.LimitOrDefault()

	users, err := s.repo.User.FindAll(ctx, limit, list.Offset(), list.Order, list.Sort)
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := s.repo.User.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	results := make([]response.UserResponse, len(users))
	for i, user := range users {
		results[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(results, list.Page, limit, total), nil
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, req *request.UserUpdateRequest) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", id.String()))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, entity.ErrUserNotFound
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Role != "" {
		user.Role = entity.Role(req.Role)
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		if err == entity.ErrEmailExists {
			return nil, err
		}
		s.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", id.String()))
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.Info("User updated", zap.String("user_id", user.ID.String()))

	result := response.UserToResponse(user)
	return &result, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.User.Delete(ctx, id); err != nil {
		if err == entity.ErrUserNotFound {
			return err
		}
		s.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", id.String()))
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.Info("User deleted", zap.String("user_id", id.String()))
	return nil
}
