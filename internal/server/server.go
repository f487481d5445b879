package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/internal/access"
	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/handler"
	"taskboard/internal/logger"
	"taskboard/internal/middleware"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const Version = "1.0.0"

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

// New wires repositories, the access guard and handlers around an open store.
func New(cfg *config.Config, db *gorm.DB) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.CustomRecovery(recoverJSON), middleware.Metrics())
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handler.ErrorResponse{Error: "Not found"})
	})

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	memberRepo := repository.NewProjectMemberRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	tagRepo := repository.NewTagRepository(db)

	guard := access.NewGuard(memberRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userRepo, tokens)
	projectHandler := handler.NewProjectHandler(projectRepo, guard)
	taskHandler := handler.NewTaskHandler(taskRepo, guard)
	commentHandler := handler.NewCommentHandler(commentRepo, taskRepo, guard)
	tagHandler := handler.NewTagHandler(tagRepo)
	healthHandler := handler.NewHealthHandler(handler.PingerFunc(func(ctx context.Context) error {
		return database.Ping(ctx, db)
	}), Version)

	// Operational routes
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(tokens))
	{
		authorized.GET("/me", userHandler.Me)

		// Project routes
		authorized.GET("/projects", projectHandler.List)
		authorized.POST("/projects", projectHandler.Create)
		authorized.GET("/projects/:projectId", projectHandler.Get)
		authorized.PATCH("/projects/:projectId", projectHandler.Update)
		authorized.DELETE("/projects/:projectId", projectHandler.Delete)

		// Task routes
		authorized.GET("/projects/:projectId/tasks", taskHandler.List)
		authorized.POST("/projects/:projectId/tasks", taskHandler.Create)
		authorized.GET("/projects/:projectId/tasks/:taskId", taskHandler.Get)
		authorized.PATCH("/projects/:projectId/tasks/:taskId", taskHandler.Update)
		authorized.DELETE("/projects/:projectId/tasks/:taskId", taskHandler.Delete)

		// Comment routes
		authorized.GET("/projects/:projectId/tasks/:taskId/comments", commentHandler.List)
		authorized.POST("/projects/:projectId/tasks/:taskId/comments", commentHandler.Create)
		authorized.DELETE("/projects/:projectId/tasks/:taskId/comments/:commentId", commentHandler.Delete)

		// Tag routes
		authorized.GET("/tags", tagHandler.List)
		authorized.POST("/tags", tagHandler.Create)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}
}

func recoverJSON(c *gin.Context, recovered any) {
	logger.Error("panic recovered", "method", c.Request.Method, "path", c.Request.URL.Path, "panic", recovered)
	c.AbortWithStatusJSON(http.StatusInternalServerError, handler.ErrorResponse{Error: "Internal server error"})
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:              ":" + s.Config.ServerPort,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", "port", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	logger.Info("server exited properly")
	return nil
}
