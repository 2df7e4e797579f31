package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sportshop/backend/internal/domain/identity"
	"github.com/sportshop/backend/internal/domain/shared"
	"github.com/sportshop/backend/internal/infrastructure/auth"
	"github.com/sportshop/backend/internal/infrastructure/config"
)

func testJWT() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-that-is-long-enough-for-hs256",
		AccessTokenExpiration:  time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "sportshop-test",
		MaxRefreshCount:        3,
	})
}

func newAuthService(users *MockUserRepository) *AuthService {
	return NewAuthService(users, testJWT(), auth.NewInMemoryTokenBlacklist(), zap.NewNop())
}

func registerRequest() RegisterRequest {
	return RegisterRequest{
		Username:  "ivanov",
		Email:     "ivanov@example.com",
		Password:  "secret123",
		FirstName: "Иван",
		LastName:  "Иванов",
	}
}

func TestRegisterFirstAccountBecomesAdministrator(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)
	users.On("FindByUsername", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)
	users.On("CountAll", mock.Anything).Return(int64(0), nil)
	users.On("CreateWithCredential", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := newAuthService(users)
	dto, err := svc.Register(context.Background(), registerRequest())

	require.NoError(t, err)
	assert.Equal(t, string(identity.RoleAdministrator), dto.Role)
}

func TestRegisterLaterAccountsAreCustomers(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)
	users.On("FindByUsername", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)
	users.On("CountAll", mock.Anything).Return(int64(5), nil)
	users.On("CreateWithCredential", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := newAuthService(users)
	dto, err := svc.Register(context.Background(), registerRequest())

	require.NoError(t, err)
	assert.Equal(t, string(identity.RoleCustomer), dto.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	existing, err := identity.NewUser("other", "ivanov@example.com", "П", "С", identity.RoleCustomer)
	require.NoError(t, err)
	users.On("FindByEmail", mock.Anything, mock.Anything).Return(existing, nil)

	svc := newAuthService(users)
	_, err = svc.Register(context.Background(), registerRequest())

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	users.AssertNotCalled(t, "CreateWithCredential", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginSuccess(t *testing.T) {
	users := new(MockUserRepository)
	user, err := identity.NewUser("ivanov", "ivanov@example.com", "Иван", "Иванов", identity.RoleCustomer)
	require.NoError(t, err)
	credential, err := identity.NewCredential(user.ID, "secret123")
	require.NoError(t, err)

	users.On("FindByUsername", mock.Anything, "ivanov").Return(user, nil)
	users.On("FindCredential", mock.Anything, user.ID).Return(credential, nil)

	svc := newAuthService(users)
	resp, err := svc.Login(context.Background(), LoginRequest{Username: "ivanov", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
}

func TestLoginWrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	user, err := identity.NewUser("ivanov", "ivanov@example.com", "Иван", "Иванов", identity.RoleCustomer)
	require.NoError(t, err)
	credential, err := identity.NewCredential(user.ID, "secret123")
	require.NoError(t, err)

	users.On("FindByUsername", mock.Anything, "ivanov").Return(user, nil)
	users.On("FindCredential", mock.Anything, user.ID).Return(credential, nil)

	svc := newAuthService(users)
	_, err = svc.Login(context.Background(), LoginRequest{Username: "ivanov", Password: "wrong"})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

func TestLoginUnknownUsername(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByUsername", mock.Anything, "ghost").Return(nil, shared.ErrNotFound)

	svc := newAuthService(users)
	_, err := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "whatever"})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

func TestLogoutBlacklistsToken(t *testing.T) {
	users := new(MockUserRepository)
	blacklist := auth.NewInMemoryTokenBlacklist()
	svc := NewAuthService(users, testJWT(), blacklist, zap.NewNop())

	user, err := identity.NewUser("ivanov", "ivanov@example.com", "Иван", "Иванов", identity.RoleCustomer)
	require.NoError(t, err)
	pair, err := testJWT().GenerateTokenPair(auth.GenerateTokenInput{
		UserID: user.ID, Username: user.Username, Role: string(user.Role),
	})
	require.NoError(t, err)
	claims, err := testJWT().ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), claims))

	blacklisted, err := blacklist.IsBlacklisted(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.True(t, blacklisted)
}
