package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/customer-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/customer-insights-api/internal/config"
	"github.com/vfg2006/customer-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func authTestConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			Secret:        "segredo_de_teste",
			TokenTTLHours: 24,
		},
	}
}

func newAuthService(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	return NewService(userRepo, authTestConfig()), userRepo
}

func testUser(t *testing.T, password string, active bool) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           7,
		Name:         "Usuário de Teste",
		Email:        "teste@exemplo.com",
		PasswordHash: string(hash),
		Active:       active,
		RoleID:       2,
	}
}

func TestLoginUser(t *testing.T) {
	service, userRepo := newAuthService(t)

	user := testUser(t, "senha123", true)
	userRepo.EXPECT().GetUserByEmail("teste@exemplo.com").Return(user, nil)

	token, err := service.LoginUser("teste@exemplo.com", "senha123")

	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "teste@exemplo.com", claims.UserEmail)
	assert.Equal(t, 2, claims.UserRoleID)
}

func TestLoginUser_NormalizesEmail(t *testing.T) {
	service, userRepo := newAuthService(t)

	user := testUser(t, "senha123", true)
	// O email é normalizado antes da consulta
	userRepo.EXPECT().GetUserByEmail("teste@exemplo.com").Return(user, nil)

	_, err := service.LoginUser("  Teste@Exemplo.com ", "senha123")
	require.NoError(t, err)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	service, userRepo := newAuthService(t)

	user := testUser(t, "senha123", true)
	userRepo.EXPECT().GetUserByEmail("teste@exemplo.com").Return(user, nil)

	token, err := service.LoginUser("teste@exemplo.com", "senha_errada")

	assert.Empty(t, token)
	assert.True(t, IsCredentialsError(err))
}

func TestLoginUser_UserNotFound(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByEmail("ninguem@exemplo.com").Return(nil, nil)

	token, err := service.LoginUser("ninguem@exemplo.com", "senha123")

	assert.Empty(t, token)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.ErrorIs(t, authErr.Err, ErrUserNotFound)
}

func TestLoginUser_DisabledUser(t *testing.T) {
	service, userRepo := newAuthService(t)

	user := testUser(t, "senha123", false)
	userRepo.EXPECT().GetUserByEmail("teste@exemplo.com").Return(user, nil)

	token, err := service.LoginUser("teste@exemplo.com", "senha123")

	assert.Empty(t, token)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.ErrorIs(t, authErr.Err, ErrUserDisabled)
	assert.Equal(t, 7, authErr.UserID)
}

func TestLoginUser_MissingCredentials(t *testing.T) {
	service, _ := newAuthService(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "Email vazio", email: "", password: "senha123"},
		{name: "Senha vazia", email: "teste@exemplo.com", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.LoginUser(tt.email, tt.password)

			assert.Empty(t, token)

			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			assert.ErrorIs(t, authErr.Err, ErrMissingRequiredData)
		})
	}
}

func TestValidateToken_InvalidToken(t *testing.T) {
	service, _ := newAuthService(t)

	claims, err := service.ValidateToken("token.nada.valido")

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	service, _ := newAuthService(t)

	expired := domain.Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("segredo_de_teste"))
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service, _ := newAuthService(t)

	other := domain.Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, other).SignedString([]byte("outro_segredo"))
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetUserProfile_StripsPasswordHash(t *testing.T) {
	service, userRepo := newAuthService(t)

	user := testUser(t, "senha123", true)
	userRepo.EXPECT().GetUserByID(7).Return(user, nil)

	profile, err := service.GetUserProfile(7)

	require.NoError(t, err)
	assert.Equal(t, 7, profile.ID)
	assert.Empty(t, profile.PasswordHash)
}

func TestGetUserProfile_NotFound(t *testing.T) {
	service, userRepo := newAuthService(t)

	userRepo.EXPECT().GetUserByID(99).Return(nil, nil)

	profile, err := service.GetUserProfile(99)

	assert.Nil(t, profile)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.ErrorIs(t, authErr.Err, ErrUserNotFound)
}
