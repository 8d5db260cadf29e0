package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"surpriset-backend/internal/domain"
	"surpriset-backend/pkg/logger"
	"surpriset-backend/pkg/utils"
)

// AuthUsecase authenticates admin users and issues JWTs. Login failures are
// indistinguishable whether the user is missing or the password is wrong.
type AuthUsecase struct {
	userRepo    domain.UserRepository
	tokenExpiry time.Duration
}

func NewAuthUsecase(userRepo domain.UserRepository, tokenExpiry time.Duration) *AuthUsecase {
	return &AuthUsecase{
		userRepo:    userRepo,
		tokenExpiry: tokenExpiry,
	}
}

type LoginRequest struct {
	Identifier string `json:"identifier"` // email or telegram username
	Password   string `json:"password"`
}

type LoginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (uc *AuthUsecase) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if req.Identifier == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: identifier and password are required", ErrValidation)
	}

	user, err := uc.userRepo.GetByIdentifier(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Burn a comparison anyway so missing users cost the same.
			utils.VerifyPassword(utils.HashPassword("decoy"), req.Password)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.VerifyPassword(user.Password, req.Password) {
		logger.WithContext(ctx).Warn().Str("identifier", req.Identifier).Msg("failed login attempt")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.TelegramUsername, user.Role(), uc.tokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	logger.WithContext(ctx).Info().Str("user_id", user.ID).Str("role", user.Role()).Msg("login")
	return &LoginResult{Token: token, User: user}, nil
}

// Me resolves the authenticated user from the JWT subject.
func (uc *AuthUsecase) Me(ctx context.Context, userID string) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// CreateAdmin provisions an admin account; used by bootstrap tooling.
func (uc *AuthUsecase) CreateAdmin(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || len(password) < 8 {
		return nil, fmt.Errorf("%w: email and a password of 8+ chars are required", ErrValidation)
	}

	now := time.Now()
	user := &domain.User{
		ID:        utils.GenerateUUID(),
		Email:     email,
		Password:  utils.HashPassword(password),
		IsAdmin:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return user, nil
}
