package usecase

import (
	"context"
	"fmt"
	"time"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/data/repository"
	"shop-backend/internal/dto/request"
	"shop-backend/internal/dto/response"
	"shop-backend/pkg/mailer"
	"shop-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	Refresh(ctx context.Context, req *request.RefreshRequest) (*response.TokenResponse, error)
	ChangePassword(ctx context.Context, req *request.ChangePasswordRequest) (*response.UserResponse, error)
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
	ConfirmReset(ctx context.Context, userID, token, password string) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	jwt    *utils.JWTManager
	mail   mailer.Mailer
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	jwt *utils.JWTManager,
	mail mailer.Mailer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		jwt:    jwt,
		mail:   mail,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	// 1. Check email is not taken yet. The unique index on users.email is
	// the real guard; this lookup only gives a friendlier fast path.
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		return nil, entity.ErrEmailExists
	}

	// 2. Hash password
	hashedPassword, err := utils.HashPassword(req.Password, s.config.App.BcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 3. Create user entity, role defaults to regularUser
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

	// 4. Save user. A concurrent registration with the same email loses
	// here and surfaces as ErrEmailExists.
	if err := s.repo.User.Create(ctx, user); err != nil {
		if err == entity.ErrEmailExists {
			return nil, err
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	// 5. Issue access token
	token, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	// 6. Welcome mail for admins, only after the row is durably saved.
	// Best-effort: a delivery failure never fails the registration.
	if user.Role.IsAdmin() {
		go s.sendAsync(user.Email, "Welcome admin!",
			"<h3>You have control to manage users in this application!</h3>")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)),
	)

	return &response.RegisterResponse{
		NewUser: response.UserToResponse(user),
		Token:   token,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	// Unknown email and wrong password return the same error, so the
	// endpoint cannot be used to enumerate accounts.
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("Login with unknown email", zap.String("email", req.Email))
		return nil, entity.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, entity.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		s.log.Error("Failed to issue access token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	refreshToken, err := s.jwt.GenerateRefreshToken(user.ID)
	if err != nil {
		s.log.Error("Failed to issue refresh token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	return &response.LoginResponse{
		Token:        token,
		RefreshToken: refreshToken,
		User:         response.UserToSummary(user),
	}, nil
}

// Refresh mints a new access token for the refresh token's subject. The
// refresh token itself is neither rotated nor invalidated; there is no
// revocation list in this design.
func (s *authService) Refresh(ctx context.Context, req *request.RefreshRequest) (*response.TokenResponse, error) {
	userID, err := s.jwt.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		s.log.Warn("Refresh token rejected", zap.Error(err))
		return nil, entity.ErrAccessDenied
	}

	token, err := s.jwt.GenerateAccessToken(userID)
	if err != nil {
		s.log.Error("Failed to issue access token", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &response.TokenResponse{Token: token}, nil
}

// ChangePassword authenticates by knowledge of the old password, not by the
// caller's session; the route is deliberately public.
func (s *authService) ChangePassword(ctx context.Context, req *request.ChangePasswordRequest) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, entity.ErrUserNotFound
	}

	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		s.log.Warn("Wrong old password", zap.String("user_id", user.ID.String()))
		return nil, entity.ErrInvalidCredentials
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword, s.config.App.BcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("update password: %w", err)
	}
	user.PasswordHash = hashedPassword
	user.UpdatedAt = time.Now()

	go s.sendAsync(user.Email, "Change password successfully!",
		"<h3>Your password already changed</h3>")

	s.log.Info("Password changed", zap.String("user_id", user.ID.String()))

	result := response.UserToResponse(user)
	return &result, nil
}

// ResetPassword starts the recovery flow: find-or-create the user's one-time
// token and mail a confirmation link embedding user id + token.
func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return entity.ErrUserNotFound
	}

	token, err := s.repo.ResetToken.FindByUserID(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to find reset token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("find reset token: %w", err)
	}

	if token == nil {
		now := time.Now()
		token = &entity.ResetToken{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			UserID: user.ID,
			Token:  utils.GenerateResetToken(),
		}

		if err := s.repo.ResetToken.Create(ctx, token); err != nil {
			s.log.Error("Failed to create reset token", zap.Error(err), zap.String("user_id", user.ID.String()))
			return fmt.Errorf("create reset token: %w", err)
		}
	}

	link := fmt.Sprintf("%s/auth/reset-password/%s/%s",
		s.config.App.BaseURL, user.ID.String(), token.Token)

	go s.sendAsync(user.Email, "Reset your password",
		fmt.Sprintf("<h3>Click this link to reset your password %s.</h3>", link))

	s.log.Info("Reset link issued", zap.String("user_id", user.ID.String()))
	return nil
}

// ConfirmReset consumes the one-time token. A missing user and a missing
// token produce the same error, so the link path leaks nothing; deleting the
// token afterwards makes replays of the same link fail.
func (s *authService) ConfirmReset(ctx context.Context, userID, tokenStr, password string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return entity.ErrInvalidResetLink
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return entity.ErrInvalidResetLink
	}

	token, err := s.repo.ResetToken.FindByUserAndToken(ctx, user.ID, tokenStr)
	if err != nil {
		s.log.Error("Failed to find reset token", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("find reset token: %w", err)
	}
	if token == nil {
		return entity.ErrInvalidResetLink
	}

	hashedPassword, err := utils.HashPassword(password, s.config.App.BcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("update password: %w", err)
	}

	if err := s.repo.ResetToken.Delete(ctx, token.ID); err != nil {
		s.log.Error("Failed to delete consumed reset token",
			zap.Error(err), zap.String("token_id", token.ID.String()))
		return fmt.Errorf("delete reset token: %w", err)
	}

	s.log.Info("Password reset", zap.String("user_id", userID))
	return nil
}

// ==================== HELPER METHODS ====================

// sendAsync delivers a notification outside the request lifecycle. Failures
// are logged by the mailer and swallowed here.
func (s *authService) sendAsync(to, subject, html string) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.mail.Send(to, subject, html)
	}()

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		s.log.Warn("Mail send timed out", zap.String("to", to), zap.String("subject", subject))
	}
}
