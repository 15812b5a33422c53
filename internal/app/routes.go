package app

import (
	"time"

	"github.com/abdulaz06/medication-adherence-tracker/internal/auth"
	"github.com/abdulaz06/medication-adherence-tracker/internal/cache"
	"github.com/abdulaz06/medication-adherence-tracker/internal/config"
	"github.com/abdulaz06/medication-adherence-tracker/internal/handlers"
	"github.com/abdulaz06/medication-adherence-tracker/internal/repo"
	"github.com/abdulaz06/medication-adherence-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	sessionStore := auth.NewStore(rdb, 24*time.Hour)
	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(sessionStore, userSvc)
	registerAuthRoutes(api, authHandler)

	protected := api.Group("", auth.RequireSession(sessionStore))
	viewCache := cache.NewViewCache(rdb, cfg.Redis.DefaultTTL.Duration())
	itemRepo := repo.NewPGItemRepo(db)
	logRepo := repo.NewPGDoseLogRepo(db)
	itemSvc := service.NewItemService(itemRepo, viewCache)
	logSvc := service.NewLogService(logRepo, itemRepo, viewCache)
	registerItemRoutes(protected, handlers.NewItemHandler(itemSvc))
	registerLogRoutes(protected, handlers.NewDoseLogHandler(logSvc))
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Medication Adherence API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/logout", h.Logout)
}

func registerItemRoutes(api *gin.RouterGroup, h *handlers.ItemHandler) {
	api.POST("/items", h.Create)
	api.GET("/items", h.List)
	api.GET("/items/:id", h.GetByID)
	api.PATCH("/items/:id", h.Update)
	api.DELETE("/items/:id", h.Delete)
}

func registerLogRoutes(api *gin.RouterGroup, h *handlers.DoseLogHandler) {
	api.POST("/logs/items/:item_id", h.Create)
	api.GET("/logs", h.List)
	api.PATCH("/logs/:id", h.Update)
	api.DELETE("/logs/:id", h.Delete)
	api.GET("/schedule", h.Schedule)
	api.GET("/stats", h.Stats)
}
