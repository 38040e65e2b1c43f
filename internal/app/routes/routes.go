package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/clubhub/internal/app/controllers"
	"github.com/yigit/clubhub/internal/middleware"
)

// Controllers groups the handlers mounted under /api/v1
type Controllers struct {
	Auth          *controllers.AuthController
	AdminRequests *controllers.AdminRequestController
	Users         *controllers.UserController
	Clubs         *controllers.ClubController
	Events        *controllers.EventController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})

	v1 := router.Group("/api/v1")
	requireAuth := authMiddleware.JWTAuth()

	auth := v1.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
		auth.GET("/me", requireAuth, ctrl.Auth.Me)
	}

	// Role checks happen in the services, so these groups only authenticate
	adminRequests := v1.Group("/admin-requests", requireAuth)
	{
		adminRequests.GET("/pending", ctrl.AdminRequests.ListPending)
		adminRequests.GET("", ctrl.AdminRequests.ListAll)
		adminRequests.POST("/:requestId/approve", ctrl.AdminRequests.Approve)
		adminRequests.POST("/:requestId/reject", ctrl.AdminRequests.Reject)
	}

	users := v1.Group("/users", requireAuth)
	{
		users.GET("", ctrl.Users.List)
		users.POST("/:userId/promote", ctrl.Users.Promote)
		users.POST("/:userId/demote", ctrl.Users.Demote)
		users.DELETE("/:userId", ctrl.Users.Delete)
	}

	clubs := v1.Group("/clubs")
	{
		clubs.GET("", ctrl.Clubs.List)
		clubs.GET("/my-club", requireAuth, ctrl.Clubs.GetMine)
		clubs.GET("/:id", ctrl.Clubs.Get)
		clubs.POST("", requireAuth, ctrl.Clubs.Create)
		clubs.PUT("/:id", requireAuth, ctrl.Clubs.Update)
		clubs.DELETE("/:id", requireAuth, ctrl.Clubs.Delete)
		clubs.POST("/:id/join", requireAuth, ctrl.Clubs.Join)
		clubs.POST("/:id/photos", requireAuth, ctrl.Clubs.AddPhoto)
		clubs.DELETE("/:id/photos", requireAuth, ctrl.Clubs.RemovePhoto)
	}

	events := v1.Group("/events")
	{
		events.GET("", ctrl.Events.List)
		events.GET("/my-events", requireAuth, ctrl.Events.ListMine)
		events.GET("/user/registrations", requireAuth, ctrl.Events.ListRegistrations)
		events.GET("/:id", ctrl.Events.Get)
		events.POST("", requireAuth, ctrl.Events.Create)
		events.PUT("/:id", requireAuth, ctrl.Events.Update)
		events.DELETE("/:id", requireAuth, ctrl.Events.Delete)
		events.POST("/:id/register", requireAuth, ctrl.Events.Register)
	}
}
