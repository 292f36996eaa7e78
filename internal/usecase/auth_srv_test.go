package usecase

import (
	"context"
	"testing"
	"time"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/data/repository"
	"shop-backend/internal/dto/request"
	"shop-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (AuthService, *repository.Repository, *fakeMailer) {
	t.Helper()

	repo := newTestRepository()
	config := &utils.Config{
		App: utils.AppConfig{
			BcryptCost: bcrypt.MinCost,
			BaseURL:    "http://localhost:8080",
		},
	}
	jwtManager := utils.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	mail := &fakeMailer{}

	service := NewAuthService(repo, config, jwtManager, mail, testLogger())
	return service, repo, mail
}

func TestRegister(t *testing.T) {
	service, repo, _ := newAuthFixture(t)
	ctx := context.Background()

	result, err := service.Register(ctx, &request.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "alice@example.com", result.NewUser.Email)
	assert.Equal(t, entity.RoleRegularUser, result.NewUser.Role)

	stored, err := repo.User.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := service.Register(ctx, &request.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = service.Register(ctx, &request.RegisterRequest{
		Email:    "alice@example.com",
		Password: "other-secret",
	})
	require.ErrorIs(t, err, entity.ErrEmailExists)
}

func TestRegisterAdminGetsWelcomeMail(t *testing.T) {
	service, _, mail := newAuthFixture(t)
	ctx := context.Background()

	_, err := service.Register(ctx, &request.RegisterRequest{
		Email:    "root@example.com",
		Password: "secret123",
		Role:     "admin",
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return mail.count() == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "root@example.com", mail.last().To)
}

func TestRegisterRegularUserGetsNoMail(t *testing.T) {
	service, _, mail := newAuthFixture(t)
	ctx := context.Background()

	_, err := service.Register(ctx, &request.RegisterRequest{
		Email:    "bob@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, mail.count())
}

func TestLogin(t *testing.T) {
	service, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := service.Register(ctx, &request.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	result, err := service.Login(ctx, &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "alice@example.com", result.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	service, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := service.Register(ctx, &request.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = service.Login(ctx, &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	require.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

// Unknown email must fail with the exact same error as a wrong password.
func TestLoginUnknownEmail(t *testing.T) {
	service, _, _ := newAuthFixture(t)

	_, err := service.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	service, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := service.Register(ctx, &request.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	login, err := service.Login(ctx, &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	result, err := service.Refresh(ctx, &request.RefreshRequest{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}

// An access token must not be accepted where a refresh token is expected.
func TestRefreshRejectsAccessToken(t *testing.T) {
	service, _, _ := newAuthFixture(t)
	ctx := context.Background()

	register, err := service.Register(ctx, &request.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = service.Refresh(ctx, &request.RefreshRequest{
		RefreshToken: register.Token,
	})
	require.ErrorIs(t, err, entity.ErrAccessDenied)
}

func TestChangePassword(t *testing.T) {
	service, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := service.Register(ctx, &request.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = service.ChangePassword(ctx, &request.ChangePasswordRequest{
		Email:       "alice@example.com",
		OldPassword: "secret123",
		NewPassword: "new-secret",
	})
	require.NoError(t, err)

	_, err = service.Login(ctx, &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.ErrorIs(t, err, entity.ErrInvalidCredentials)

	_, err = service.Login(ctx, &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "new-secret",
	})
	require.NoError(t, err)
}

func TestChangePasswordWrongOldPassword(t *testing.T) {
	service, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := service.Register(ctx, &request.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = service.ChangePassword(ctx, &request.ChangePasswordRequest{
		Email:       "alice@example.com",
		OldPassword: "wrong",
		NewPassword: "new-secret",
	})
	require.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestResetPasswordFlow(t *testing.T) {
	service, repo, mail := newAuthFixture(t)
	ctx := context.Background()

	register, err := service.Register(ctx, &request.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	userID := register.NewUser.ID

	err = service.ResetPassword(ctx, &request.ResetPasswordRequest{
		Email: "alice@example.com",
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return mail.count() == 1
	}, 2*time.Second, 10*time.Millisecond)

	// A second request reuses the stored token instead of minting another
	err = service.ResetPassword(ctx, &request.ResetPasswordRequest{
		Email: "alice@example.com",
	})
	require.NoError(t, err)

	id := mustParse(t, userID)
	token, err := repo.ResetToken.FindByUserID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, token)

	err = service.ConfirmReset(ctx, userID, token.Token, "brand-new-pass")
	require.NoError(t, err)

	_, err = service.Login(ctx, &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "brand-new-pass",
	})
	require.NoError(t, err)

	// The consumed token must not work a second time
	err = service.ConfirmReset(ctx, userID, token.Token, "again")
	require.ErrorIs(t, err, entity.ErrInvalidResetLink)
}

func TestConfirmResetBadToken(t *testing.T) {
	service, _, _ := newAuthFixture(t)
	ctx := context.Background()

	register, err := service.Register(ctx, &request.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	err = service.ConfirmReset(ctx, register.NewUser.ID, "no-such-token", "new-pass")
	require.ErrorIs(t, err, entity.ErrInvalidResetLink)
}

func TestResetPasswordUnknownEmail(t *testing.T) {
	service, _, _ := newAuthFixture(t)

	err := service.ResetPassword(context.Background(), &request.ResetPasswordRequest{
		Email: "nobody@example.com",
	})
	require.ErrorIs(t, err, entity.ErrUserNotFound)
}
