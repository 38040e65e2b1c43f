package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	appAuth "github.com/yigit/clubhub/internal/app/auth"
	"github.com/yigit/clubhub/internal/app/models"
	"github.com/yigit/clubhub/internal/app/models/dto"
	"github.com/yigit/clubhub/internal/app/services"
	"github.com/yigit/clubhub/internal/middleware"
)

// AdminRequestController exposes the admin approval workflow
type AdminRequestController struct {
	service services.AdminRequestService
}

// NewAdminRequestController creates a new AdminRequestController
func NewAdminRequestController(service services.AdminRequestService) *AdminRequestController {
	return &AdminRequestController{service: service}
}

// ListPending godoc
// @Summary List pending admin requests
// @Tags admin-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AdminRequestResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /admin-requests/pending [get]
func (c *AdminRequestController) ListPending(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	reqs, err := c.service.ListPending(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewAdminRequestResponses(reqs)))
}

// ListAll godoc
// @Summary List all admin requests
// @Description Full request history, newest first
// @Tags admin-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AdminRequestResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /admin-requests [get]
func (c *AdminRequestController) ListAll(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	reqs, err := c.service.ListAll(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewAdminRequestResponses(reqs)))
}

// Approve godoc
// @Summary Approve an admin request
// @Tags admin-requests
// @Produce json
// @Security BearerAuth
// @Param requestId path string true "Admin request ID"
// @Success 200 {object} dto.APIResponse{data=dto.AdminRequestActionResponse}
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse "Admin request not found"
// @Failure 409 {object} dto.ErrorResponse "Admin request is not pending"
// @Router /admin-requests/{requestId}/approve [post]
func (c *AdminRequestController) Approve(ctx *gin.Context) {
	c.resolve(ctx, c.service.Approve, services.MsgAdminRequestApproved)
}

// Reject godoc
// @Summary Reject an admin request
// @Tags admin-requests
// @Produce json
// @Security BearerAuth
// @Param requestId path string true "Admin request ID"
// @Success 200 {object} dto.APIResponse{data=dto.AdminRequestActionResponse}
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse "Admin request not found"
// @Failure 409 {object} dto.ErrorResponse "Admin request is not pending"
// @Router /admin-requests/{requestId}/reject [post]
func (c *AdminRequestController) Reject(ctx *gin.Context) {
	c.resolve(ctx, c.service.Reject, services.MsgAdminRequestRejected)
}

type resolveFunc func(context.Context, appAuth.Actor, models.AdminRequestID) (*models.AdminRequest, error)

func (c *AdminRequestController) resolve(ctx *gin.Context, apply resolveFunc, message string) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "requestId", models.ParseAdminRequestID)
	if !ok {
		return
	}

	req, err := apply(ctx.Request.Context(), actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(message, dto.AdminRequestActionResponse{
		Message:      message,
		AdminRequest: dto.NewAdminRequestResponse(req),
	}))
}
