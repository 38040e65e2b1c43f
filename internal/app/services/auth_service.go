package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/clubhub/internal/app/models"
	"github.com/yigit/clubhub/internal/app/models/dto"
	"github.com/yigit/clubhub/internal/pkg/apperrors"
	"github.com/yigit/clubhub/internal/pkg/validation"
)

// Registration outcome messages
const (
	MsgRegisteredMainAdmin    = "Welcome! You are the main admin."
	MsgRegisteredAdminPending = "Admin request submitted! Waiting for approval."
	MsgRegisteredMember       = "Member account created successfully!"
	MsgLoginSuccessful        = "Login successful"
)

// TokenIssuer signs access tokens
type TokenIssuer interface {
	GenerateToken(user *models.User) (token string, expiresIn int, err error)
}

// PasswordHasher hashes and verifies credentials
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(hashedPassword, password string) bool
}

// AuthService handles registration, login and the current user profile
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Me(ctx context.Context, userID models.UserID) (*models.User, error)
}

type authServiceImpl struct {
	deps   Dependencies
	tokens TokenIssuer
	hasher PasswordHasher
}

// NewAuthService creates a new AuthService
func NewAuthService(deps Dependencies, tokens TokenIssuer, hasher PasswordHasher) AuthService {
	return &authServiceImpl{
		deps:   deps.withDefaults(),
		tokens: tokens,
		hasher: hasher,
	}
}

func (s *authServiceImpl) validateRegistration(req *dto.RegisterRequest) error {
	if err := validation.Required(
		validation.Field{Name: "name", Value: req.Name},
		validation.Field{Name: "email", Value: req.Email},
		validation.Field{Name: "password", Value: req.Password},
	); err != nil {
		return err
	}
	if !validation.IsValidEmail(req.Email) {
		return apperrors.NewValidationError("invalid email format")
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return err
	}
	if req.RegisterAs != models.RoleMember && req.RegisterAs != models.RoleAdmin {
		return apperrors.NewValidationError("registerAs must be either member or admin")
	}
	return nil
}

// Register creates an account. The very first account becomes the main admin;
// later admin registrations become pending_admin with a pending admin request.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	req.Email = validation.NormalizeEmail(req.Email)
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.deps.Logger.Error().Err(err).Msg("Failed to hash password")
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	user := &models.User{
		ID:       models.NewUserID(),
		Email:    req.Email,
		Password: hashed,
		Name:     req.Name,
	}
	var message string

	err = s.deps.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.deps.Users.LockBootstrap(ctx); err != nil {
			return err
		}

		if _, err := s.deps.Users.GetByEmail(ctx, user.Email); err == nil {
			return apperrors.ErrEmailAlreadyExists
		} else if !errors.Is(err, apperrors.ErrUserNotFound) {
			return fmt.Errorf("error checking email: %w", err)
		}

		count, err := s.deps.Users.Count(ctx)
		if err != nil {
			return err
		}

		switch {
		case count == 0:
			user.Role = models.RoleAdmin
			message = MsgRegisteredMainAdmin
		case req.RegisterAs == models.RoleAdmin:
			user.Role = models.RolePendingAdmin
			message = MsgRegisteredAdminPending
		default:
			user.Role = models.RoleMember
			message = MsgRegisteredMember
		}

		if err := s.deps.Users.Create(ctx, user); err != nil {
			return err
		}

		if user.Role != models.RolePendingAdmin {
			return nil
		}
		reason := req.Reason
		if reason == "" {
			reason = models.DefaultAdminRequestReason
		}
		return s.deps.AdminRequests.Create(ctx, &models.AdminRequest{
			ID:     models.NewAdminRequestID(),
			UserID: user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Reason: reason,
			Status: models.AdminRequestPending,
		})
	})
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindInternal {
			s.deps.Logger.Error().Err(err).Str("email", user.Email).Msg("Failed to register user")
		}
		return nil, err
	}

	s.deps.Logger.Info().
		Str("userID", string(user.ID)).
		Str("role", string(user.Role)).
		Msg("User registered")

	return s.authResponse(user, message)
}

// Login verifies credentials. Unknown emails and wrong passwords are indistinguishable.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := validation.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("email and password are required")
	}

	user, err := s.deps.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	if !s.hasher.Check(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.authResponse(user, MsgLoginSuccessful)
}

// Me returns the authenticated user
func (s *authServiceImpl) Me(ctx context.Context, userID models.UserID) (*models.User, error) {
	return s.deps.Users.GetByID(ctx, userID)
}

func (s *authServiceImpl) authResponse(user *models.User, message string) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.tokens.GenerateToken(user)
	if err != nil {
		s.deps.Logger.Error().Err(err).Str("userID", string(user.ID)).Msg("Failed to generate token")
		return nil, apperrors.NewInternalError("failed to generate token", err)
	}

	return &dto.AuthResponse{
		Message: message,
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: dto.NewUserResponse(user),
	}, nil
}
