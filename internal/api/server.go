package api

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/martijn/exerlog/internal/api/docs"
	"github.com/martijn/exerlog/internal/api/handler"
	"github.com/martijn/exerlog/internal/api/middleware"
	"github.com/martijn/exerlog/internal/core/service"
	"github.com/martijn/exerlog/pkg/config"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
	log    logrus.FieldLogger
}

// NewServer creates a new API server
func NewServer(
	cfg *config.Config,
	log logrus.FieldLogger,
	userService *service.UserService,
	exerciseService *service.ExerciseService,
) *Server {
	// Set Gin mode
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.ErrorHandlerMiddleware(log))
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	exerciseHandler := handler.NewExerciseHandler(exerciseService)

	users := router.Group("/api/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.POST("/:_id/exercises", exerciseHandler.CreateExercise)
		users.GET("/:_id/logs", exerciseHandler.GetLog)
	}

	// Front page and assets
	if cfg.StaticDir != "" {
		mountStatic(router, cfg.StaticDir)
	}

	if cfg.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return &Server{
		router: router,
		srv: &http.Server{
			Addr:           cfg.Addr(),
			Handler:        router,
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 1 << 20, // 1 MB
		},
		config: cfg,
		log:    log,
	}
}

// mountStatic serves dir/views/index.html at / and dir/public at /public
func mountStatic(router *gin.Engine, dir string) {
	index := filepath.Join(dir, "views", "index.html")
	if _, err := os.Stat(index); err == nil {
		router.StaticFile("/", index)
	}

	public := filepath.Join(dir, "public")
	if _, err := os.Stat(public); err == nil {
		router.Static("/public", public)
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Infof("Your app is listening on %s", s.srv.Addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
