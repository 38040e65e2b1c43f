package controllers

import (
	"github.com/gin-gonic/gin"
	appAuth "github.com/yigit/clubhub/internal/app/auth"
	"github.com/yigit/clubhub/internal/middleware"
	"github.com/yigit/clubhub/internal/pkg/apperrors"
)

// requireActor returns the authenticated actor or writes a 401
func requireActor(c *gin.Context) (appAuth.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.NewUnauthenticatedError("authentication required"))
		return appAuth.Actor{}, false
	}
	return actor, true
}

// pathID parses the named path parameter with parse or writes a 400
func pathID[T ~string](c *gin.Context, name string, parse func(string) (T, bool)) (T, bool) {
	id, ok := parse(c.Param(name))
	if !ok {
		middleware.HandleAPIError(c, apperrors.NewValidationError("invalid "+name))
		var zero T
		return zero, false
	}
	return id, true
}
