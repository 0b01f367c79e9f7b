package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"team-site-backend/internal/config"
	"team-site-backend/internal/handlers"
	"team-site-backend/internal/middleware"
	"team-site-backend/internal/models"
	"team-site-backend/internal/repository"
	"team-site-backend/internal/seed"
	"team-site-backend/internal/service"
	"team-site-backend/pkg/cache"
	"team-site-backend/pkg/logger"
	"team-site-backend/pkg/utils"
)

type Options struct {
	TemplatesDir string
	StaticDir    string
}

type Application struct {
	cfg     *config.Config
	options Options

	db    *gorm.DB
	cache *cache.Cache

	repositories repositoryContainer
	services     serviceContainer
	handlers     handlerContainer

	router *gin.Engine
	server *http.Server
}

type repositoryContainer struct {
	Branch repository.BranchRepository
	Page   repository.PageRepository
}

type serviceContainer struct {
	Branch *service.BranchService
	Page   *service.PageService
}

type handlerContainer struct {
	Template *handlers.TemplateHandler
	Branch   *handlers.BranchHandler
	Page     *handlers.PageHandler
	Health   *handlers.HealthHandler
}

func New(cfg *config.Config, opts Options) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	if opts.TemplatesDir == "" {
		opts.TemplatesDir = "./templates"
	}
	if opts.StaticDir == "" {
		opts.StaticDir = "./static"
	}

	app := &Application{
		cfg:     cfg,
		options: opts,
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.runMigrations(); err != nil {
		return nil, err
	}

	app.initCache()
	app.initRepositories()
	app.initServices()

	seed.EnsureDefaultBranches(app.services.Branch)
	seed.EnsureDefaultPages(app.services.Page)

	if err := app.initHandlers(); err != nil {
		return nil, err
	}

	if err := app.initRouter(); err != nil {
		return nil, err
	}

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initDatabase() error {
	logger.Info("Connecting to database", nil)

	db, err := gorm.Open(postgres.Open(a.cfg.DatabaseURL), &gorm.Config{
		Logger: logger.NewGormLogger(),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	a.db = db
	return nil
}

func (a *Application) runMigrations() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	logger.Info("Running database migrations", nil)

	if err := a.db.AutoMigrate(
		&models.Branch{},
		&models.Page{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database migration completed", nil)
	return nil
}

func (a *Application) initCache() {
	pageCache, err := cache.NewCache(a.cfg.RedisURL, a.cfg.EnableRedis && a.cfg.EnableCache)
	if err != nil {
		logger.Warn("Cache unavailable, rendering without it", map[string]interface{}{"error": err.Error()})
		pageCache, _ = cache.NewCache("", false)
	}
	a.cache = pageCache
}

func (a *Application) initRepositories() {
	a.repositories = repositoryContainer{
		Branch: repository.NewBranchRepository(a.db),
		Page:   repository.NewPageRepository(a.db),
	}
}

func (a *Application) initServices() {
	a.services = serviceContainer{
		Branch: service.NewBranchService(a.repositories.Branch),
		Page:   service.NewPageService(a.repositories.Page),
	}
}

func (a *Application) initHandlers() error {
	templates, err := utils.LoadTemplates(a.options.TemplatesDir)
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}
	logger.Info("Templates loaded successfully", nil)

	templateHandler, err := handlers.NewTemplateHandler(a.services.Branch, a.services.Page, a.cfg, templates, a.cache)
	if err != nil {
		return fmt.Errorf("failed to create template handler: %w", err)
	}

	a.handlers = handlerContainer{
		Template: templateHandler,
		Branch:   handlers.NewBranchHandler(a.services.Branch),
		Page:     handlers.NewPageHandler(a.services.Page),
		Health:   handlers.NewHealthHandler(),
	}

	return nil
}

func (a *Application) initRouter() error {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinLogger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	router.Use(cors.New(cors.Config{
		AllowOrigins:  a.cfg.CORSOrigins,
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/health", a.handlers.Health.Check)

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router.Static("/static", a.options.StaticDir)
	router.StaticFile("/favicon.ico", a.options.StaticDir+"/favicon.ico")
	router.StaticFile("/fallback-image.png", a.options.StaticDir+"/fallback-image.png")
	router.StaticFile("/fallback-branch.png", a.options.StaticDir+"/fallback-branch.png")

	// Every navigation target is a seeded page looked up by request path.
	router.GET("/", a.handlers.Template.RenderPage)
	router.GET("/about", a.handlers.Template.RenderPage)
	router.GET("/branches", a.handlers.Template.RenderPage)
	router.GET("/contact", a.handlers.Template.RenderPage)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/branches", a.handlers.Branch.GetAll)
		v1.GET("/pages", a.handlers.Page.GetAll)
		v1.GET("/pages/slug/:slug", a.handlers.Page.GetBySlug)
	}

	router.NoRoute(a.handlers.Template.NotFound)

	a.router = router
	return nil
}
