package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mbdocs/mbdocs-api/internal/application/usecase"
	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
)

// RouterDeps зависимости маршрутизатора.
type RouterDeps struct {
	CompanyUC   *usecase.CompanyUseCase
	ProductUC   *usecase.ProductUseCase
	TemplateUC  *usecase.TemplateUseCase
	DocumentUC  *usecase.DocumentUseCase
	WorkspaceUC *usecase.WorkspaceUseCase
	PrintUC     *usecase.PrintUseCase
	ExportUC    *usecase.ExportUseCase
}

// Router регистрирует маршруты API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Справочники
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Шаблоны печатных форм; preview регистрируется до :id,
	// чтобы не перехватывался параметром
	templates := api.Group("/templates")
	templateHandler := NewTemplateHandler(deps.TemplateUC, deps.PrintUC)
	templates.Get("/", templateHandler.List)
	templates.Post("/", templateHandler.Create)
	templates.Post("/preview", templateHandler.Preview)
	templates.Get("/:id", templateHandler.GetByID)
	templates.Put("/:id", templateHandler.Update)
	templates.Delete("/:id", templateHandler.Delete)

	// Документы: один обработчик на вид
	mountDocuments(api, "/invoices", entity.DocTypeInvoice, deps)
	mountDocuments(api, "/acts", entity.DocTypeAct, deps)
	mountDocuments(api, "/upds", entity.DocTypeUPD, deps)

	// Рабочая область
	workspace := api.Group("/workspace")
	workspaceHandler := NewWorkspaceHandler(deps.WorkspaceUC)
	workspace.Get("/tabs", workspaceHandler.Tabs)
	workspace.Put("/tabs", workspaceHandler.SaveTabs)
	workspace.Get("/active-tab", workspaceHandler.ActiveTab)
	workspace.Put("/active-tab", workspaceHandler.SetActiveTab)
}

func mountDocuments(api fiber.Router, prefix string, docType entity.DocType, deps RouterDeps) {
	group := api.Group(prefix)
	handler := NewDocumentHandler(docType, deps.DocumentUC, deps.PrintUC, deps.ExportUC)
	group.Get("/", handler.List)
	group.Post("/", handler.Create)
	group.Get("/:id", handler.GetByID)
	group.Put("/:id", handler.Update)
	group.Delete("/:id", handler.Delete)
	group.Get("/:id/print", handler.Print)
	group.Get("/:id/export.xlsx", handler.ExportXLSX)
	group.Get("/:id/export.xml", handler.ExportXML)
	group.Get("/:id/export.pdf", handler.ExportPDF)
}
