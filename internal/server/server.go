package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskmanager/internal/auth"
	"taskmanager/internal/config"
	"taskmanager/internal/handler"
	"taskmanager/internal/middleware"
	"taskmanager/internal/migrations"
	"taskmanager/internal/repository"
	"taskmanager/internal/seed"
	"taskmanager/internal/service"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

// Services is the application graph built on one database handle.
type Services struct {
	Users    *service.UserService
	Statuses *service.TaskStatusService
	Labels   *service.LabelService
	Tasks    *service.TaskService
	Auth     *service.AuthService
	Tokens   *auth.TokenManager
}

// OpenDB connects gorm to postgres with driver errors translated to gorm's
// sentinel errors.
func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	level := logger.Warn
	if cfg.DBLogSQL {
		level = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	return db, nil
}

func NewServices(db *gorm.DB, cfg *config.Config) *Services {
	tx := repository.NewTxManager(db)
	userRepo := repository.NewUserRepository(db)
	statusRepo := repository.NewTaskStatusRepository(db)
	labelRepo := repository.NewLabelRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry())

	return &Services{
		Users:    service.NewUserService(tx, userRepo, taskRepo, auth.HashPassword),
		Statuses: service.NewTaskStatusService(tx, statusRepo, taskRepo),
		Labels:   service.NewLabelService(tx, labelRepo, taskRepo),
		Tasks:    service.NewTaskService(tx, taskRepo, statusRepo, userRepo, labelRepo),
		Auth:     service.NewAuthService(userRepo, tokens),
		Tokens:   tokens,
	}
}

// NewRouter mounts every route. Reads are public; writes need a bearer token.
func NewRouter(s *Services) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), gin.Logger(), gin.Recovery())

	userHandler := handler.NewUserHandler(s.Users)
	statusHandler := handler.NewTaskStatusHandler(s.Statuses)
	labelHandler := handler.NewLabelHandler(s.Labels)
	taskHandler := handler.NewTaskHandler(s.Tasks)
	authHandler := handler.NewAuthHandler(s.Auth)

	r.GET("/welcome", handler.Welcome)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	api := r.Group("/api")
	api.POST("/login", authHandler.Login)
	api.POST("/users", userHandler.Create)
	api.GET("/users", userHandler.List)
	api.GET("/users/:id", userHandler.Get)
	api.GET("/task_statuses", statusHandler.List)
	api.GET("/task_statuses/:id", statusHandler.Get)
	api.GET("/labels", labelHandler.List)
	api.GET("/labels/:id", labelHandler.Get)
	api.GET("/tasks", taskHandler.List)
	api.GET("/tasks/:id", taskHandler.Get)

	// Protected routes - require authentication
	authorized := api.Group("")
	authorized.Use(middleware.JWTAuthMiddleware(s.Tokens))
	{
		authorized.PUT("/users/:id", userHandler.Update)
		authorized.DELETE("/users/:id", userHandler.Delete)

		authorized.POST("/task_statuses", statusHandler.Create)
		authorized.PUT("/task_statuses/:id", statusHandler.Update)
		authorized.DELETE("/task_statuses/:id", statusHandler.Delete)

		authorized.POST("/labels", labelHandler.Create)
		authorized.PUT("/labels/:id", labelHandler.Update)
		authorized.DELETE("/labels/:id", labelHandler.Delete)

		authorized.POST("/tasks", taskHandler.Create)
		authorized.PUT("/tasks/:id", taskHandler.Update)
		authorized.DELETE("/tasks/:id", taskHandler.Delete)
	}
	return r
}

func Init(cfg *config.Config) (*Server, error) {
	gin.SetMode(cfg.GinMode)

	if cfg.AutoMigrate {
		if err := migrations.Up(cfg.MigrationURL()); err != nil {
			return nil, fmt.Errorf("❌ failed to migrate DB: %w", err)
		}
		log.Println("✅ Migrations applied")
	}

	db, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}
	log.Println("✅ Connected to database")

	services := NewServices(db, cfg)

	if cfg.SeedEnabled {
		seeder := seed.NewSeeder(services.Users, services.Statuses, services.Labels)
		if err := seeder.Run(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
			return nil, fmt.Errorf("❌ failed to seed DB: %w", err)
		}
	}

	return &Server{
		Engine: NewRouter(services),
		DB:     db,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("✅ Server exited properly")
}
