package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Amsa221/softskills-project/database"
	"github.com/Amsa221/softskills-project/internal/config"
	"github.com/Amsa221/softskills-project/internal/email"
	"github.com/Amsa221/softskills-project/internal/handlers"
	"github.com/Amsa221/softskills-project/internal/logger"
	"github.com/Amsa221/softskills-project/internal/middleware"
	"github.com/Amsa221/softskills-project/internal/repositories"
	"github.com/Amsa221/softskills-project/internal/routes"
	"github.com/Amsa221/softskills-project/internal/services"
	"github.com/Amsa221/softskills-project/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		// Surface unique-index violations as gorm.ErrDuplicatedKey so
		// services can map them instead of leaking driver errors.
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and handlers onto a gin
// engine. Tests call it directly against their own database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.Enabled {
		emailService = email.NewSMTPProvider(cfg)
	} else {
		logger.Warn("Email delivery disabled, using no-op provider")
		emailService = email.NewNoopProvider()
	}

	categorieRepo := repositories.NewCategorieRepository(gormDB)
	tagRepo := repositories.NewTagRepository(gormDB)
	articleRepo := repositories.NewArticleRepository(gormDB)
	commentaireRepo := repositories.NewCommentaireRepository(gormDB)
	paymentRepo := repositories.NewPaymentRepository()
	dailyStatRepo := repositories.NewDailyStatRepository()
	skillRepo := repositories.NewSkillRepository(gormDB)
	newsletterRepo := repositories.NewNewsletterRepository(gormDB)

	analyticsService := services.NewAnalyticsService(gormDB, dailyStatRepo)

	return &services.ServiceContainer{
		CategorieService:   services.NewCategorieService(categorieRepo),
		ArticleService:     services.NewArticleService(articleRepo, categorieRepo, tagRepo, commentaireRepo),
		CommentaireService: services.NewCommentaireService(commentaireRepo, articleRepo),
		PaymentService:     services.NewPaymentService(gormDB, paymentRepo, analyticsService),
		AnalyticsService:   analyticsService,
		SkillService:       services.NewSkillService(skillRepo),
		NewsletterService:  services.NewNewsletterService(newsletterRepo, emailService, cfg.Email.ContactInbox),
		EmailService:       emailService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		CategorieHandler:   handlers.NewCategorieHandler(baseHandler, services.CategorieService),
		ArticleHandler:     handlers.NewArticleHandler(baseHandler, services.ArticleService),
		CommentaireHandler: handlers.NewCommentaireHandler(baseHandler, services.CommentaireService),
		PaymentHandler:     handlers.NewPaymentHandler(baseHandler, services.PaymentService),
		AnalyticsHandler:   handlers.NewAnalyticsHandler(baseHandler, services.AnalyticsService),
		SkillHandler:       handlers.NewSkillHandler(baseHandler, services.SkillService),
		NewsletterHandler:  handlers.NewNewsletterHandler(baseHandler, services.NewsletterService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		gin.Recovery(),
	)
	return router
}
