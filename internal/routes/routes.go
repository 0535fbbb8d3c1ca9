package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/auth"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/config"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/handlers"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/middleware"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/models"
)

// Deps bundles everything the router wires together.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Issuer *auth.TokenIssuer

	Auth          *handlers.AuthHandler
	Jobs          *handlers.JobHandler
	Applications  *handlers.ApplicationHandler
	Engagements   *handlers.EngagementHandler
	Companies     *handlers.CompanyHandler
	Notifications *handlers.NotificationHandler
	Blog          *handlers.BlogHandler
}

// Setup registers all API routes and the shared middleware chain.
func Setup(r *gin.Engine, d Deps) {
	limiter := middleware.NewRateLimiter(d.Config.RateLimit.RequestsPerSecond, d.Config.RateLimit.Burst)
	r.Use(middleware.RequestID())
	r.Use(limiter.Middleware())

	authn := middleware.RequireAuth(d.DB, d.Issuer)
	seekerOnly := middleware.RequireRole(models.RoleJobSeeker)
	employerOnly := middleware.RequireRole(models.RoleEmployer)
	adminOnly := middleware.RequireRole(models.RoleSuperAdmin)

	api := r.Group("/api/v1")

	api.GET("/health", handlers.HealthCheck)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", d.Auth.Register)
		authGroup.POST("/login", d.Auth.Login)
		authGroup.POST("/forgot-password", d.Auth.ForgotPassword)
		authGroup.POST("/reset-password", d.Auth.ResetPassword)
		authGroup.GET("/me", authn, d.Auth.Me)
		authGroup.PUT("/me", authn, d.Auth.UpdateMe)
		authGroup.PUT("/password", authn, d.Auth.ChangePassword)
	}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", d.Jobs.List)
		jobs.GET("/:id", d.Jobs.Get)
		jobs.GET("/:id/comments", d.Engagements.Comments)
		jobs.POST("", authn, employerOnly, d.Jobs.Create)
		jobs.PUT("/:id", authn, employerOnly, d.Jobs.Update)
		jobs.DELETE("/:id", authn, middleware.RequireRole(models.RoleEmployer, models.RoleSuperAdmin), d.Jobs.Delete)
		jobs.POST("/:id/apply", authn, seekerOnly, d.Applications.Apply)
		jobs.POST("/:id/engage", authn, d.Engagements.Engage)
	}

	api.PATCH("/applications/:id/status", authn, employerOnly, d.Applications.UpdateStatus)

	me := api.Group("/me", authn)
	{
		me.GET("/favorites", d.Engagements.Favorites)
		me.GET("/applications", seekerOnly, d.Applications.MyApplications)
		me.GET("/notifications", d.Notifications.List)
		me.PATCH("/notifications/:id/read", d.Notifications.MarkRead)
	}

	company := api.Group("/company", authn, employerOnly)
	{
		company.POST("", d.Companies.Create)
		company.GET("", d.Companies.Get)
		company.PUT("", d.Companies.Update)
	}

	employer := api.Group("/employer", authn, employerOnly)
	{
		employer.GET("/jobs", d.Jobs.EmployerJobs)
		employer.GET("/jobs/:id/applications", d.Applications.JobApplications)
	}

	blog := api.Group("/blog")
	{
		blog.GET("", d.Blog.List)
		blog.GET("/:slug", d.Blog.Get)
	}

	admin := api.Group("/admin", authn, adminOnly)
	{
		admin.GET("/users", d.Auth.AdminListUsers)
		admin.PATCH("/users/:id/active", d.Auth.SetUserActive)
		admin.GET("/companies", d.Companies.AdminList)
		admin.PATCH("/companies/:id/approve", d.Companies.Approve)
		admin.GET("/jobs", d.Jobs.AdminList)
		admin.PATCH("/jobs/:id/approve", d.Jobs.Approve)
		admin.POST("/blog", d.Blog.Create)
		admin.PUT("/blog/:id", d.Blog.Update)
		admin.DELETE("/blog/:id", d.Blog.Delete)
	}
}
