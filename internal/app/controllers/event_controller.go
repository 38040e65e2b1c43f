package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/clubhub/internal/app/models"
	"github.com/yigit/clubhub/internal/app/models/dto"
	"github.com/yigit/clubhub/internal/app/services"
	"github.com/yigit/clubhub/internal/middleware"
)

// EventController handles event operations
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// List godoc
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.EventResponse}
// @Router /events [get]
func (c *EventController) List(ctx *gin.Context) {
	events, err := c.eventService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewEventResponses(events)))
}

// Get godoc
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid event ID"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *EventController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", models.ParseEventID)
	if !ok {
		return
	}

	event, err := c.eventService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewEventResponse(event)))
}

// ListMine godoc
// @Summary List the caller's events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.EventResponse}
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /events/my-events [get]
func (c *EventController) ListMine(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	events, err := c.eventService.ListMine(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewEventResponses(events)))
}

// ListRegistrations godoc
// @Summary List the caller's registrations
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.RegistrationResponse}
// @Router /events/user/registrations [get]
func (c *EventController) ListRegistrations(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}

	regs, err := c.eventService.ListRegistrations(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewRegistrationResponses(regs)))
}

// Create godoc
// @Summary Create an event
// @Description The deadline must fall strictly before the event date. Unpaid events are stored with price 0.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event data"
// @Success 201 {object} dto.APIResponse{data=dto.EventResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /events [post]
func (c *EventController) Create(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	var req dto.CreateEventRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	event, err := c.eventService.Create(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewEventResponse(event)))
}

// Update godoc
// @Summary Update an event
// @Description Creator only
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body dto.UpdateEventRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Not the event creator"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [put]
func (c *EventController) Update(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", models.ParseEventID)
	if !ok {
		return
	}
	var req dto.UpdateEventRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	event, err := c.eventService.Update(ctx.Request.Context(), actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewEventResponse(event)))
}

// Delete godoc
// @Summary Delete an event
// @Description Creator only
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Not the event creator"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [delete]
func (c *EventController) Delete(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", models.ParseEventID)
	if !ok {
		return
	}

	if err := c.eventService.Delete(ctx.Request.Context(), actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(services.MsgEventDeleted, nil))
}

// Register godoc
// @Summary Register for an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterForEventResponse}
// @Failure 400 {object} dto.ErrorResponse "Registration closed"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 409 {object} dto.ErrorResponse "Already registered"
// @Router /events/{id}/register [post]
func (c *EventController) Register(ctx *gin.Context) {
	actor, ok := requireActor(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", models.ParseEventID)
	if !ok {
		return
	}

	reg, err := c.eventService.Register(ctx.Request.Context(), actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewMessageResponse(services.MsgRegisteredForEvent, dto.RegisterForEventResponse{
		Message:      services.MsgRegisteredForEvent,
		Registration: dto.NewRegistrationResponse(reg),
	}))
}
