package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/clubhub/internal/app/models/dto"
	"github.com/yigit/clubhub/internal/pkg/apperrors"
	"github.com/yigit/clubhub/internal/pkg/logger"
)

// HandleAPIError renders err as the standard error envelope. The status follows the
// error kind; internal failures are logged and hidden behind a generic message.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetailFor(err)
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("Internal server error")
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func errorDetailFor(err error) (int, *dto.ErrorDetail) {
	switch apperrors.KindOf(err) {
	case apperrors.KindUnauthenticated:
		return http.StatusUnauthorized, dto.NewErrorDetail(unauthenticatedCode(err), err.Error())
	case apperrors.KindForbidden:
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, err.Error())
	case apperrors.KindNotFound:
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())
	case apperrors.KindConflict:
		return http.StatusConflict, dto.NewErrorDetail(conflictCode(err), err.Error())
	case apperrors.KindValidation:
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
	default:
		return http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
				WithSeverity(dto.ErrorSeverityCritical)
	}
}

func unauthenticatedCode(err error) dto.ErrorCode {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return dto.ErrorCodeInvalidCredentials
	case errors.Is(err, apperrors.ErrTokenExpired):
		return dto.ErrorCodeExpiredToken
	case errors.Is(err, apperrors.ErrTokenRevoked):
		return dto.ErrorCodeRevokedToken
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		return dto.ErrorCodeInvalidToken
	default:
		return dto.ErrorCodeUnauthorized
	}
}

func conflictCode(err error) dto.ErrorCode {
	if apperrors.Is(err, apperrors.ErrEmailAlreadyExists,
		apperrors.ErrClubAlreadyOwned,
		apperrors.ErrAlreadyClubMember,
		apperrors.ErrAlreadyRegistered,
	) {
		return dto.ErrorCodeResourceAlreadyExists
	}
	return dto.ErrorCodeConflict
}
