package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/doctorcel/doctorcel-api/internal/application/auth"
	"github.com/doctorcel/doctorcel-api/internal/application/billing"
	"github.com/doctorcel/doctorcel-api/internal/application/techservice"
	"github.com/doctorcel/doctorcel-api/internal/application/usecase"
	"github.com/doctorcel/doctorcel-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC      *usecase.ClientUseCase
	CatalogUC     *usecase.CatalogUseCase
	ArticleUC     *usecase.ArticleUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	CompanyUC     *usecase.CompanyUseCase
	CreateInvoice *billing.CreateInvoiceUseCase
	InvoicePDF    *billing.PDFUseCase
	TechServiceUC *techservice.UseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	clientHandler := NewClientHandler(deps.ClientUC)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	articleHandler := NewArticleHandler(deps.ArticleUC)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.InvoicePDF)
	techHandler := NewTechServiceHandler(deps.TechServiceUC)

	// Auth (público)
	api.Post("/auth/login", authHandler.Login)

	// Vitrina (público): catálogo de solo lectura para la tienda en línea.
	api.Get("/articles", articleHandler.List)
	api.Get("/articles/:id", articleHandler.GetByID)
	api.Get("/categories", catalogHandler.ListCategories)
	api.Get("/subcategories", catalogHandler.ListSubcategories)
	api.Get("/companies", companyHandler.Get)

	// Alta de usuarios: pública solo mientras no exista ninguno (bootstrap del
	// primer ADMIN); después el handler exige token de ADMIN.
	api.Post("/users", OptionalAuth(deps.JWTSecret), authHandler.CreateUser)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/validate", authHandler.Validate)

	// Usuarios (solo ADMIN)
	protected.Post("/users/password", RequireRole(entity.RoleAdmin), authHandler.UpdatePassword)

	// Clientes
	clients := protected.Group("/clients")
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)

	// Catálogo: mutaciones de categorías y subcategorías (solo ADMIN)
	adminOnly := RequireRole(entity.RoleAdmin)
	protected.Post("/categories", adminOnly, catalogHandler.CreateCategory)
	protected.Delete("/categories/:id", adminOnly, catalogHandler.DeleteCategory)
	protected.Post("/subcategories", adminOnly, catalogHandler.CreateSubcategory)
	protected.Delete("/subcategories/:id", adminOnly, catalogHandler.DeleteSubcategory)

	// Artículos: mutaciones (ADMIN y SELLER crean/editan, solo ADMIN borra)
	sellerOrAdmin := RequireRole(entity.RoleAdmin, entity.RoleSeller)
	protected.Post("/articles", sellerOrAdmin, articleHandler.Create)
	protected.Patch("/articles/:id", sellerOrAdmin, articleHandler.Update)
	protected.Delete("/articles/:id", adminOnly, articleHandler.Delete)

	// Sedes: lectura para cualquier usuario autenticado, mutación solo ADMIN
	protected.Get("/warehouses", warehouseHandler.List)
	protected.Get("/warehouses/:id", warehouseHandler.GetByID)
	protected.Post("/warehouses", adminOnly, warehouseHandler.Create)
	protected.Patch("/warehouses/:id", adminOnly, warehouseHandler.Update)
	protected.Delete("/warehouses/:id", adminOnly, warehouseHandler.Delete)

	// Empresa emisora (solo ADMIN)
	protected.Post("/companies", adminOnly, companyHandler.Create)
	protected.Put("/companies/:id", adminOnly, companyHandler.Update)

	// Facturación (ADMIN y SELLER)
	invoices := protected.Group("/invoices", sellerOrAdmin)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.GetPDF)

	// Servicio técnico (cualquier usuario autenticado)
	tech := protected.Group("/techservices")
	tech.Post("/", techHandler.Create)
	tech.Get("/", techHandler.List)
	tech.Get("/:id", techHandler.GetByID)
	tech.Put("/:id", techHandler.UpdateStatus)
	tech.Patch("/:id", techHandler.Update)
}
