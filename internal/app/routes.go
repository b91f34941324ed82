package app

import (
	"github.com/AvishekRimal/student-planner/internal/auth"
	"github.com/AvishekRimal/student-planner/internal/cache"
	"github.com/AvishekRimal/student-planner/internal/config"
	"github.com/AvishekRimal/student-planner/internal/handlers"
	"github.com/AvishekRimal/student-planner/internal/repo"
	"github.com/AvishekRimal/student-planner/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// routerDeps bundles the stores the route tree is built from.
type routerDeps struct {
	sessions   *auth.Store
	tasks      repo.TaskRepo
	notes      repo.NoteRepo
	users      repo.UserRepo
	statsCache *cache.StatsCache
}

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, deps routerDeps) {
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

	userSvc := service.NewUserService(deps.users)
	authHandler := handlers.NewAuthHandler(deps.sessions, userSvc)
	registerAuthRoutes(api, deps.sessions, authHandler)

	protected := api.Group("", auth.RequireSession(deps.sessions))

	taskSvc := service.NewTaskService(deps.tasks, deps.statsCache)
	taskHandler := handlers.NewTaskHandler(taskSvc)
	registerTaskRoutes(protected, taskHandler)

	noteSvc := service.NewNoteService(deps.notes)
	noteHandler := handlers.NewNoteHandler(noteSvc)
	registerNoteRoutes(protected, noteHandler)

	statsSvc := service.NewStatsService(deps.tasks, deps.statsCache)
	statsHandler := handlers.NewStatsHandler(statsSvc)
	protected.GET("/stats", statsHandler.Get)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Student Planner API",
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

func registerTaskRoutes(api *gin.RouterGroup, h *handlers.TaskHandler) {
	api.POST("/tasks", h.Create)
	api.GET("/tasks", h.List)
	api.GET("/tasks/:id", h.GetByID)
	api.PATCH("/tasks/:id", h.Update)
	api.DELETE("/tasks/:id", h.Delete)
	api.POST("/tasks/:id/complete", h.Complete)

	api.GET("/tasks/:id/subtasks", h.ListSubTasks)
	api.POST("/tasks/:id/subtasks", h.AddSubTask)
	api.PATCH("/tasks/:id/subtasks/:subtaskId", h.UpdateSubTask)
	api.DELETE("/tasks/:id/subtasks/:subtaskId", h.DeleteSubTask)
}

func registerNoteRoutes(api *gin.RouterGroup, h *handlers.NoteHandler) {
	api.POST("/notes", h.Create)
	api.GET("/notes", h.List)
	api.GET("/notes/:id", h.GetByID)
	api.PUT("/notes/:id", h.Update)
	api.DELETE("/notes/:id", h.Delete)
}

func registerAuthRoutes(api *gin.RouterGroup, sessions *auth.Store, h *handlers.AuthHandler) {
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/logout", h.Logout)
	api.GET("/auth/me", auth.RequireSession(sessions), h.Me)
}
