package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"hangar/internal/domain/entity"
	domainerrors "hangar/internal/domain/errors"
	"hangar/internal/domain/repository"
	"hangar/internal/domain/service"
	mockRepo "hangar/internal/mocks/repository"
	mockSvc "hangar/internal/mocks/service"
	"hangar/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(userRepo repository.UserRepository, hasher service.PasswordHasher, tokenService service.TokenService) usecase.AuthUsecase {
	return NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       slog.Default(),
	})
}

func TestAuthService_Login_Success(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockToken := mockSvc.NewMockTokenService(t)
	authService := newTestAuthService(mockUserRepo, mockHasher, mockToken)

	ctx := context.Background()
	user := &entity.User{ID: 42, Username: "collector", PasswordHash: "$2a$10$digest"}

	mockUserRepo.EXPECT().
		FindByUsername(ctx, "collector").
		Return(user, nil)
	mockHasher.EXPECT().
		Check("secret-password", "$2a$10$digest").
		Return(true)
	mockToken.EXPECT().
		Issue(uint(42), "collector").
		Return("signed.token.value", nil)
	mockToken.EXPECT().
		TTL().
		Return(24 * time.Hour)

	output, err := authService.Login(ctx, usecase.LoginInput{Username: "collector", Password: "secret-password"})
	require.NoError(t, err)
	assert.Equal(t, "signed.token.value", output.Token)
	assert.EqualValues(t, 86400, output.ExpiresIn)
	require.NotNil(t, output.User)
	assert.Equal(t, uint(42), output.User.ID)
	assert.Equal(t, "collector", output.User.Username)
}

func TestAuthService_Login_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	ctx := context.Background()

	// Unknown username.
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockToken := mockSvc.NewMockTokenService(t)
	authService := newTestAuthService(mockUserRepo, mockHasher, mockToken)

	mockUserRepo.EXPECT().
		FindByUsername(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	_, unknownUserErr := authService.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "whatever"})
	require.Error(t, unknownUserErr)
	assert.ErrorIs(t, unknownUserErr, domainerrors.ErrInvalidCredentials)

	// Known username, wrong password.
	mockUserRepo2 := mockRepo.NewMockUserRepository(t)
	mockHasher2 := mockSvc.NewMockPasswordHasher(t)
	mockToken2 := mockSvc.NewMockTokenService(t)
	authService2 := newTestAuthService(mockUserRepo2, mockHasher2, mockToken2)

	mockUserRepo2.EXPECT().
		FindByUsername(ctx, "collector").
		Return(&entity.User{ID: 42, Username: "collector", PasswordHash: "$2a$10$digest"}, nil)
	mockHasher2.EXPECT().
		Check("wrong-password", "$2a$10$digest").
		Return(false)

	_, wrongPasswordErr := authService2.Login(ctx, usecase.LoginInput{Username: "collector", Password: "wrong-password"})
	require.Error(t, wrongPasswordErr)
	assert.ErrorIs(t, wrongPasswordErr, domainerrors.ErrInvalidCredentials)

	// Both failures map to the same domain error, so responses are identical.
	assert.Equal(t, unknownUserErr.Error(), wrongPasswordErr.Error())
}

func TestAuthService_Login_TokenIssueFailure(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockToken := mockSvc.NewMockTokenService(t)
	authService := newTestAuthService(mockUserRepo, mockHasher, mockToken)

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByUsername(ctx, "collector").
		Return(&entity.User{ID: 42, Username: "collector", PasswordHash: "$2a$10$digest"}, nil)
	mockHasher.EXPECT().
		Check("secret-password", "$2a$10$digest").
		Return(true)
	mockToken.EXPECT().
		Issue(uint(42), "collector").
		Return("", errors.New("signing failed"))

	output, err := authService.Login(ctx, usecase.LoginInput{Username: "collector", Password: "secret-password"})
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Resolve_ValidToken(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockToken := mockSvc.NewMockTokenService(t)
	authService := newTestAuthService(mockUserRepo, mockHasher, mockToken)

	claims := &service.Claims{
		Username:         "collector",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "42"},
	}
	mockToken.EXPECT().
		Validate("signed.token.value").
		Return(claims, nil)

	userID, err := authService.Resolve(context.Background(), "signed.token.value")
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestAuthService_Resolve_InvalidToken(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockToken := mockSvc.NewMockTokenService(t)
	authService := newTestAuthService(mockUserRepo, mockHasher, mockToken)

	mockToken.EXPECT().
		Validate("garbage").
		Return(nil, errors.New("token is malformed"))

	userID, err := authService.Resolve(context.Background(), "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.Zero(t, userID)
}

func TestAuthService_Resolve_MalformedSubject(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockToken := mockSvc.NewMockTokenService(t)
	authService := newTestAuthService(mockUserRepo, mockHasher, mockToken)

	claims := &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-number"},
	}
	mockToken.EXPECT().
		Validate("odd.token.value").
		Return(claims, nil)

	userID, err := authService.Resolve(context.Background(), "odd.token.value")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.Zero(t, userID)
}

func TestAuthService_CurrentUser(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockToken := mockSvc.NewMockTokenService(t)
	authService := newTestAuthService(mockUserRepo, mockHasher, mockToken)

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByID(ctx, uint(42)).
		Return(&entity.User{ID: 42, Username: "collector", PasswordHash: "$2a$10$digest"}, nil)

	summary, err := authService.CurrentUser(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, uint(42), summary.ID)
	assert.Equal(t, "collector", summary.Username)
}

func TestAuthService_CurrentUser_DeletedAccount(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockToken := mockSvc.NewMockTokenService(t)
	authService := newTestAuthService(mockUserRepo, mockHasher, mockToken)

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByID(ctx, uint(42)).
		Return(nil, repository.ErrUserNotFound)

	summary, err := authService.CurrentUser(ctx, 42)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.Nil(t, summary)
}
