package identity

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/sportshop/backend/internal/domain/identity"
	"github.com/sportshop/backend/internal/domain/shared"
	"github.com/sportshop/backend/internal/infrastructure/auth"
)

// errInvalidCredentials hides whether the username or the password was wrong
var errInvalidCredentials = shared.NewDomainError("UNAUTHORIZED", "Invalid username or password")

// AuthService handles registration, login and session lifecycle
type AuthService struct {
	users     identity.UserRepository
	jwt       *auth.JWTService
	blacklist auth.TokenBlacklist
	logger    *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	users identity.UserRepository,
	jwt *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		jwt:       jwt,
		blacklist: blacklist,
		logger:    logger,
	}
}

// Register creates a new account with its credential in one
// transaction. The very first account in the store becomes the
// administrator; every later one is a customer.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*UserDTO, error) {
	if existing, err := s.users.FindByEmail(ctx, req.Email); err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	}

	if existing, err := s.users.FindByUsername(ctx, req.Username); err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this username already exists")
	}

	count, err := s.users.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	role := identity.RoleCustomer
	if count == 0 {
		role = identity.RoleAdministrator
	}

	user, err := identity.NewUser(req.Username, req.Email, req.FirstName, req.LastName, role)
	if err != nil {
		return nil, err
	}
	if req.Patronymic != "" {
		user.SetPatronymic(req.Patronymic)
	}
	if req.BirthDate != "" {
		birthDate, err := time.Parse(time.DateOnly, req.BirthDate)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Birth date must be in YYYY-MM-DD format")
		}
		user.SetBirthDate(&birthDate)
	}

	credential, err := identity.NewCredential(user.ID, req.Password)
	if err != nil {
		return nil, err
	}

	if err := s.users.CreateWithCredential(ctx, user, credential); err != nil {
		return nil, err
	}

	s.logger.Info("account registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	return toUserDTO(user), nil
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	credential, err := s.users.FindCredential(ctx, user.ID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if !credential.VerifyPassword(req.Password) {
		s.logger.Warn("failed login attempt", zap.String("username", req.Username))
		return nil, errInvalidCredentials
	}

	tokens, err := s.jwt.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID.String()))

	return &LoginResponse{
		User:   toUserDTO(user),
		Tokens: tokens,
	}, nil
}

// Refresh exchanges a refresh token for a fresh pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid refresh token")
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid refresh token")
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	tokens, err := s.jwt.RefreshTokenPair(refreshToken, user.Username)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid refresh token")
	}
	return tokens, nil
}

// Logout revokes the current access token until it would have expired
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if s.blacklist == nil || claims.ID == "" {
		return nil
	}

	ttl := claims.ExpiresIn()
	if ttl <= 0 {
		return nil
	}

	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, ttl); err != nil {
		return shared.ErrConnectivity
	}

	s.logger.Info("user logged out", zap.String("user_id", claims.UserID))
	return nil
}
