package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mbdocs/mbdocs-api/internal/application/usecase"
	"github.com/mbdocs/mbdocs-api/internal/domain/printing"
	"github.com/mbdocs/mbdocs-api/internal/infrastructure/bolt"
	"github.com/mbdocs/mbdocs-api/internal/infrastructure/excel"
	infrapdf "github.com/mbdocs/mbdocs-api/internal/infrastructure/pdf"
	"github.com/mbdocs/mbdocs-api/internal/infrastructure/qrimg"
	"github.com/mbdocs/mbdocs-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/mbdocs/mbdocs-api/internal/interfaces/http"
	"github.com/mbdocs/mbdocs-api/pkg/config"
	"github.com/mbdocs/mbdocs-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("загрузка конфигурации: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("запуск приложения")

	store, err := bolt.Open(bolt.Options{
		Path: cfg.Store.Path,
		Seed: cfg.Store.Seed,
	})
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("открытие хранилища")
	}
	defer store.Close()
	store.OnChange(func(collection string) {
		log.Debug().Str("collection", collection).Msg("хранилище изменено")
	})

	companyRepo := bolt.NewCompanyRepository(store)
	productRepo := bolt.NewProductRepository(store)
	documentRepo := bolt.NewDocumentRepository(store)
	counterRepo := bolt.NewCounterRepository(store)
	templateRepo := bolt.NewTemplateRepository(store)
	workspaceRepo := bolt.NewWorkspaceRepository(store)

	renderer := printing.NewRenderer(qrimg.NewEncoder())

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	templateUC := usecase.NewTemplateUseCase(templateRepo)
	documentUC := usecase.NewDocumentUseCase(documentRepo, counterRepo, productRepo)
	workspaceUC := usecase.NewWorkspaceUseCase(workspaceRepo)
	printUC := usecase.NewPrintUseCase(renderer, documentRepo, companyRepo, productRepo, templateRepo)
	exportUC := usecase.NewExportUseCase(
		excel.NewBuilder(), xmlexport.NewBuilder(), infrapdf.NewMarotoGenerator(),
		documentRepo, companyRepo, productRepo,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:   companyUC,
		ProductUC:   productUC,
		TemplateUC:  templateUC,
		DocumentUC:  documentUC,
		WorkspaceUC: workspaceUC,
		PrintUC:     printUC,
		ExportUC:    exportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP-сервер завершился")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("получен сигнал остановки, закрываем сервер...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("остановка сервера")
	}

	log.Info().Msg("приложение остановлено")
}
