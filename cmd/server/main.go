package main

import (
	"Fabrika/internal/config"
	"Fabrika/internal/handlers"
	"Fabrika/internal/middleware"
	"Fabrika/internal/pdf"
	"Fabrika/internal/repo"
	"Fabrika/internal/service"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		// логгера ещё нет: без обязательных настроек не стартуем
		panic(err)
	}

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	sessionRepo := repo.NewSessionRepository(gormDB)
	materialRepo := repo.NewMaterialRepository(gormDB)
	productTypeRepo := repo.NewProductTypeRepository(gormDB)
	itemRepo := repo.NewItemRepository(gormDB)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpireMinutes)
	renderer := pdf.NewRenderer(cfg.BaseImagePath, cfg.PDFDir)

	userService := service.NewUserService(userRepo, sessionRepo, tokens)
	materialService := service.NewMaterialService(materialRepo)
	productTypeService := service.NewProductTypeService(productTypeRepo)
	itemService := service.NewItemService(itemRepo, materialRepo, productTypeRepo, renderer, sugar)

	h := handlers.NewHandler(userService, materialService, productTypeService, itemService, tokens, sugar, cfg)

	sugar.Infow(
		"Starting server",
		"app", cfg.AppName,
		"addr", cfg.RunAddress,
		"pdf_dir", cfg.PDFDir,
	)

	if err := http.ListenAndServe(cfg.RunAddress, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
