package server

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"election-service/configs"
	"election-service/internal/server/handlers"
	"election-service/internal/server/middleware"
	"election-service/internal/ws"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(
	router *gin.Engine,
	hub *ws.Hub,
	rateLimiter *middleware.RateLimitMiddleware,
	authHandler *handlers.AuthHandler,
	voteHandler *handlers.VoteHandler,
	electionHandler *handlers.ElectionHandler,
	candidateHandler *handlers.CandidateHandler,
	studentHandler *handlers.StudentHandler,
	issueHandler *handlers.IssueHandler,
) {
	cfg := configs.Load()

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check route
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Live results feed for dashboards
	router.GET("/ws", ws.ServeWs(hub))

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/login", authHandler.StudentLogin)
			auth.POST("/admin", authHandler.AdminLogin)
		}

		public.GET("/election", electionHandler.Status)
		public.GET("/candidates", candidateHandler.List)
		public.POST("/issues", rateLimiter.RateLimit(5, time.Minute), issueHandler.Submit)
	}

	// Student routes (require JWT authentication)
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuth(cfg.JWTSecret))
	{
		protected.GET("/ballot", voteHandler.GetBallot)
		protected.POST("/vote", rateLimiter.RateLimit(5, time.Minute), voteHandler.SubmitBallot)
		protected.GET("/slip", voteHandler.GetSlip)
	}

	// Admin routes (require the teacher role)
	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.JWTAuth(cfg.JWTSecret), middleware.RequireAdmin())
	{
		admin.GET("/dashboard", electionHandler.Dashboard)

		admin.POST("/election/start", electionHandler.Start)
		admin.POST("/election/end", electionHandler.End)
		admin.POST("/election/reset", electionHandler.Reset)

		admin.POST("/candidates", candidateHandler.Add)
		admin.DELETE("/candidates/:id", candidateHandler.Delete)
		admin.GET("/candidates/:id/votes", candidateHandler.Votes)
		admin.GET("/positions/:position/chart", candidateHandler.PositionChart)

		admin.GET("/students", studentHandler.List)
		admin.POST("/students", studentHandler.Add)
		admin.DELETE("/students/:id", studentHandler.Delete)
		admin.POST("/students/:id/password", studentHandler.UpdatePassword)
		admin.POST("/students/:id/suspend", studentHandler.Suspend)
		admin.POST("/students/:id/reset-votes", studentHandler.ResetVotes)

		admin.GET("/issues", issueHandler.List)
		admin.POST("/issues/:id/status", issueHandler.UpdateStatus)
	}
}
