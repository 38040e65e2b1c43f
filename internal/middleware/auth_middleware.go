package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	appAuth "github.com/yigit/clubhub/internal/app/auth"
	"github.com/yigit/clubhub/internal/app/models"
	"github.com/yigit/clubhub/internal/pkg/apperrors"
	"github.com/yigit/clubhub/internal/pkg/auth"
	"github.com/yigit/clubhub/internal/pkg/session"
)

// Context keys set by JWTAuth
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// TokenValidator verifies access tokens
type TokenValidator interface {
	ValidateToken(token string) (*auth.Claims, error)
}

// AuthMiddleware for authentication
type AuthMiddleware struct {
	tokens  TokenValidator
	revoker session.Revoker
	logger  zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware. A nil revoker disables revocation checks.
func NewAuthMiddleware(tokens TokenValidator, revoker session.Revoker, logger zerolog.Logger) *AuthMiddleware {
	if revoker == nil {
		revoker = session.NoopStore{}
	}
	return &AuthMiddleware{
		tokens:  tokens,
		revoker: revoker,
		logger:  logger,
	}
}

// extractToken accepts "Bearer <jwt>" and, for Swagger UI convenience, a bare JWT
func extractToken(header string) (string, error) {
	header = strings.Trim(strings.TrimSpace(header), "\"'")
	if header == "" {
		return "", apperrors.NewUnauthenticatedError("authorization header missing")
	}
	if !strings.HasPrefix(header, "Bearer ") && strings.Count(header, ".") == 2 {
		return header, nil
	}
	return auth.ExtractBearerToken(header)
}

// JWTAuth validates the bearer token, rejects revoked tokens and stores the actor in the context
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			m.logger.Debug().Err(err).Str("path", c.FullPath()).Msg("Token validation failed")
			HandleAPIError(c, err)
			return
		}

		revoked, err := m.revoker.IsRevoked(c.Request.Context(), claims.UserID, claims.IssuedAtTime())
		if err != nil {
			HandleAPIError(c, apperrors.NewInternalError("failed to check token revocation", err))
			return
		}
		if revoked {
			HandleAPIError(c, apperrors.ErrTokenRevoked)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// GetActor returns the authenticated actor stored by JWTAuth
func GetActor(c *gin.Context) (appAuth.Actor, bool) {
	id, ok := c.Get(ContextUserID)
	if !ok {
		return appAuth.Actor{}, false
	}
	role, ok := c.Get(ContextRole)
	if !ok {
		return appAuth.Actor{}, false
	}

	userID, ok1 := id.(models.UserID)
	userRole, ok2 := role.(models.Role)
	if !ok1 || !ok2 {
		return appAuth.Actor{}, false
	}
	return appAuth.Actor{ID: userID, Role: userRole}, true
}
