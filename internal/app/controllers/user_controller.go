package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/clubhub/internal/app/models"
	"github.com/yigit/clubhub/internal/app/models/dto"
	"github.com/yigit/clubhub/internal/app/services"
	"github.com/yigit/clubhub/internal/middleware"
)

// UserController handles user administration
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// List godoc
// @Summary List users
// @Description Returns every user without credentials
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /users [get]
func (c *UserController) List(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	users, err := c.userService.List(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewUserResponses(users)))
}

// Promote godoc
// @Summary Promote a user to admin
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserActionResponse}
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 409 {object} dto.ErrorResponse "User is already an admin"
// @Router /users/{userId}/promote [post]
func (c *UserController) Promote(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "userId", models.ParseUserID)
	if !ok {
		return
	}

	user, err := c.userService.Promote(ctx.Request.Context(), actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(services.MsgUserPromoted, dto.UserActionResponse{
		Message: services.MsgUserPromoted,
		User:    dto.NewUserResponse(user),
	}))
}

// Demote godoc
// @Summary Demote a user to member
// @Description The last remaining admin cannot be demoted
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserActionResponse}
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 409 {object} dto.ErrorResponse "Already a member or last admin"
// @Router /users/{userId}/demote [post]
func (c *UserController) Demote(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "userId", models.ParseUserID)
	if !ok {
		return
	}

	user, err := c.userService.Demote(ctx.Request.Context(), actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(services.MsgUserDemoted, dto.UserActionResponse{
		Message: services.MsgUserDemoted,
		User:    dto.NewUserResponse(user),
	}))
}

// Delete godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 409 {object} dto.ErrorResponse "Self delete or last admin"
// @Router /users/{userId} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "userId", models.ParseUserID)
	if !ok {
		return
	}

	if err := c.userService.Delete(ctx.Request.Context(), actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(services.MsgUserDeleted, nil))
}
