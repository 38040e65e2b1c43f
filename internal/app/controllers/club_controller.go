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

// ClubController handles club operations
type ClubController struct {
	clubService services.ClubService
}

// NewClubController creates a new ClubController
func NewClubController(clubService services.ClubService) *ClubController {
	return &ClubController{
		clubService: clubService,
	}
}

// List godoc
// @Summary List clubs
// @Tags clubs
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ClubResponse}
// @Router /clubs [get]
func (c *ClubController) List(ctx *gin.Context) {
	clubs, err := c.clubService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewClubResponses(clubs)))
}

// Get godoc
// @Summary Get a club
// @Tags clubs
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {object} dto.APIResponse{data=dto.ClubResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid club ID"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Router /clubs/{id} [get]
func (c *ClubController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", models.ParseClubID)
	if !ok {
		return
	}

	club, err := c.clubService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewClubResponse(club)))
}

// GetMine godoc
// @Summary Get the caller's club
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ClubResponse}
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse "No club yet"
// @Router /clubs/my-club [get]
func (c *ClubController) GetMine(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	club, err := c.clubService.GetMine(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewClubResponse(club)))
}

// Create godoc
// @Summary Create a club
// @Description An admin may own at most one club
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClubRequest true "Club data"
// @Success 201 {object} dto.APIResponse{data=dto.ClubResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 409 {object} dto.ErrorResponse "Club already owned"
// @Router /clubs [post]
func (c *ClubController) Create(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	var req dto.CreateClubRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	club, err := c.clubService.Create(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewClubResponse(club)))
}

// Update godoc
// @Summary Update a club
// @Description Owner or any admin
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param request body dto.UpdateClubRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.ClubResponse}
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Router /clubs/{id} [put]
func (c *ClubController) Update(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", models.ParseClubID)
	if !ok {
		return
	}
	var req dto.UpdateClubRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	club, err := c.clubService.Update(ctx.Request.Context(), actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewClubResponse(club)))
}

// Delete godoc
// @Summary Delete a club
// @Description Owner or any admin
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Router /clubs/{id} [delete]
func (c *ClubController) Delete(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", models.ParseClubID)
	if !ok {
		return
	}

	if err := c.clubService.Delete(ctx.Request.Context(), actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(services.MsgClubDeleted, nil))
}

// Join godoc
// @Summary Join a club
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Success 200 {object} dto.APIResponse{data=dto.JoinClubResponse}
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Failure 409 {object} dto.ErrorResponse "Already a member"
// @Router /clubs/{id}/join [post]
func (c *ClubController) Join(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", models.ParseClubID)
	if !ok {
		return
	}

	club, err := c.clubService.Join(ctx.Request.Context(), actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse(services.MsgClubJoined, dto.JoinClubResponse{
		Message: services.MsgClubJoined,
		Club:    dto.NewClubResponse(club),
	}))
}

// AddPhoto godoc
// @Summary Add a club photo
// @Description Club owner only
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param request body dto.ClubPhotoRequest true "Photo URL"
// @Success 200 {object} dto.APIResponse{data=dto.ClubResponse}
// @Failure 400 {object} dto.ErrorResponse "Photo URL required"
// @Failure 403 {object} dto.ErrorResponse "Not the club owner"
// @Router /clubs/{id}/photos [post]
func (c *ClubController) AddPhoto(ctx *gin.Context) {
	c.photo(ctx, c.clubService.AddPhoto, services.MsgClubPhotoAdded)
}

// RemovePhoto godoc
// @Summary Remove a club photo
// @Description Club owner only. Removing a URL the club does not have is a no-op.
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param request body dto.ClubPhotoRequest true "Photo URL"
// @Success 200 {object} dto.APIResponse{data=dto.ClubResponse}
// @Failure 400 {object} dto.ErrorResponse "Photo URL required"
// @Failure 403 {object} dto.ErrorResponse "Not the club owner"
// @Router /clubs/{id}/photos [delete]
func (c *ClubController) RemovePhoto(ctx *gin.Context) {
	c.photo(ctx, c.clubService.RemovePhoto, services.MsgClubPhotoRemoved)
}

type photoFunc func(context.Context, appAuth.Actor, models.ClubID, string) (*models.Club, error)

func (c *ClubController) photo(ctx *gin.Context, apply photoFunc, message string) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", models.ParseClubID)
	if !ok {
		return
	}
	var req dto.ClubPhotoRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	club, err := apply(ctx.Request.Context(), actor, id, req.PhotoURL)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse(message, dto.NewClubResponse(club)))
}
