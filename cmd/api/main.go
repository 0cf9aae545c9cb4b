package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/doctorcel/doctorcel-api/internal/application/auth"
	"github.com/doctorcel/doctorcel-api/internal/application/billing"
	"github.com/doctorcel/doctorcel-api/internal/application/techservice"
	"github.com/doctorcel/doctorcel-api/internal/application/usecase"
	infrapdf "github.com/doctorcel/doctorcel-api/internal/infrastructure/pdf"
	"github.com/doctorcel/doctorcel-api/internal/infrastructure/postgres"
	httpRouter "github.com/doctorcel/doctorcel-api/internal/interfaces/http"
	"github.com/doctorcel/doctorcel-api/pkg/config"
	"github.com/doctorcel/doctorcel-api/pkg/logger"
)

func main() {
	// .env es opcional; en despliegue las variables vienen del entorno.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	subcategoryRepo := postgres.NewSubcategoryRepository(pool)
	articleRepo := postgres.NewArticleRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	techServiceRepo := postgres.NewTechServiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	clientUC := usecase.NewClientUseCase(clientRepo)
	catalogUC := usecase.NewCatalogUseCase(categoryRepo, subcategoryRepo, articleRepo)
	articleUC := usecase.NewArticleUseCase(articleRepo, categoryRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)

	createInvoiceUC := billing.NewCreateInvoiceUseCase(
		txRunner, clientRepo, companyRepo, warehouseRepo, articleRepo, invoiceRepo,
	)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, companyRepo, pdfGenerator)

	techServiceUC := techservice.NewUseCase(techServiceRepo, clientRepo, warehouseRepo, userRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Doctor Cel API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:      clientUC,
		CatalogUC:     catalogUC,
		ArticleUC:     articleUC,
		WarehouseUC:   warehouseUC,
		CompanyUC:     companyUC,
		CreateInvoice: createInvoiceUC,
		InvoicePDF:    invoicePDFUC,
		TechServiceUC: techServiceUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
