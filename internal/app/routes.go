package app

import (
	"net/http"

	"Staff/internal/auth"
	"Staff/internal/cache"
	"Staff/internal/config"
	"Staff/internal/handlers"
	"Staff/internal/repo"
	"Staff/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", homeHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	sessionStore := auth.NewStore(rdb, cfg.Session.TTL.Duration())
	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(sessionStore, userSvc)
	registerAuthRoutes(r, sessionStore, authHandler)

	employeeRepo := repo.NewPGEmployeeRepo(db)
	employeeCache := cache.NewEmployeeCache(rdb, cfg.Redis.DefaultTTL.Duration())
	employeeSvc := service.NewEmployeeService(employeeRepo, employeeCache)
	employeeHandler := handlers.NewEmployeeHandler(employeeSvc)

	protected := r.Group("", auth.RequireSession(sessionStore))
	registerEmployeeRoutes(protected, employeeHandler)
	protected.GET("/logout", authHandler.Logout)
	protected.GET("/change_password", authHandler.ChangePasswordForm)
	protected.POST("/change_password", authHandler.ChangePasswordSubmit)
}

func homeHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "home.tmpl", gin.H{
			"Title":   "Home",
			"Version": cfg.App.Version,
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": cfg.App.Version})
	}
}

func registerEmployeeRoutes(g *gin.RouterGroup, h *handlers.EmployeeHandler) {
	g.GET("/employee_records", h.List)
	g.POST("/employee_records", h.List) // not used for mutation
	g.GET("/employee_records/create", h.CreateForm)
	g.POST("/employee_records/create", h.CreateSubmit)
	g.GET("/employee_records/update", h.UpdatePicker)
	g.GET("/employee_records/:id/edit", h.EditForm)
	g.POST("/employee_records/:id/update", h.UpdateSubmit)
	g.GET("/employee_records/delete", h.DeleteList)
	g.POST("/employee_records/delete/:id", h.DeleteSubmit)
}

func registerAuthRoutes(r *gin.Engine, sessions *auth.Store, h *handlers.AuthHandler) {
	anon := r.Group("", auth.RedirectIfAuthenticated(sessions))
	anon.GET("/login", h.LoginForm)
	anon.POST("/login", h.LoginSubmit)
	anon.GET("/register", h.RegisterForm)
	anon.POST("/register", h.RegisterSubmit)
}
