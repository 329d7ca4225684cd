package app

import (
	"coding_lessons_backend/internal/config"
	"coding_lessons_backend/internal/controller"
	"coding_lessons_backend/internal/repository"
	"coding_lessons_backend/internal/service"
	"coding_lessons_backend/pkg/configwatcher"
	"coding_lessons_backend/pkg/database"
	"coding_lessons_backend/pkg/logger"
	"coding_lessons_backend/pkg/monitoring"
	"coding_lessons_backend/pkg/security"
	"coding_lessons_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Provider *config.Provider
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client

	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	student  *repository.StudentRepository
	lesson   *repository.LessonRepository
	response *repository.ResponseRepository
}

type services struct {
	identity     service.IdentityResolver
	anonymous    *service.AnonymousIdentityService
	credentialed *service.CredentialedIdentityService
	response     *service.ResponseService
	progress     *service.ProgressService
	teacher      *service.TeacherService
	lesson       *service.LessonService
}

type controllers struct {
	student  *controller.StudentController
	auth     *controller.AuthController
	response *controller.ResponseController
	teacher  *controller.TeacherController
	lesson   *controller.LessonController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		student:  repository.NewStudentRepository(db),
		lesson:   repository.NewLessonRepository(db),
		response: repository.NewResponseRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	// 启动时选定身份解析策略，两种模式互斥
	switch cfg.Auth.Mode {
	case config.AuthModeCredentialed:
		s.credentialed = service.NewCredentialedIdentityService(repos.student, cfg, rdb)
		s.identity = s.credentialed
	default:
		s.anonymous = service.NewAnonymousIdentityService(repos.student)
		s.identity = s.anonymous
	}

	s.response = service.NewResponseService(repos.lesson, repos.response)
	s.progress = service.NewProgressService(repos.response)
	s.teacher = service.NewTeacherService(repos.student, repos.response)
	s.lesson = service.NewLessonService(repos.lesson)

	return s
}

func (a *App) initControllers(s *services, cfg *config.Config, db *gorm.DB) *controllers {
	c := &controllers{
		response: controller.NewResponseController(s.identity, s.response, s.progress),
		teacher:  controller.NewTeacherController(s.teacher),
		lesson:   controller.NewLessonController(s.lesson),
		health:   controller.NewHealthController(db, cfg.Server.Name),
	}

	if s.anonymous != nil {
		c.student = controller.NewStudentController(s.anonymous)
	}
	if s.credentialed != nil {
		c.auth = controller.NewAuthController(s.credentialed, cfg)
	}

	return c
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(func() []string {
		return a.Provider.Get().CORS.AllowedOrigins
	}))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	migrate := cfg.ForceMigrate || cfg.Server.Mode == "debug"
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.Auth.Mode == config.AuthModeCredentialed && cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
	}

	app := &App{
		Config:   cfg,
		Provider: config.NewProvider(cfg),
		DB:       db,
		Redis:    rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, cfg, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Server.Name, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, services)

	// 配置热更新：教师凭证、CORS白名单
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		app.Provider.Swap(newCfg)
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
