package handlers

import (
	"Fabrika/internal/config"
	"Fabrika/internal/middleware"
	"Fabrika/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	materialService *service.MaterialService,
	productTypeService *service.ProductTypeService,
	itemService *service.ItemService,
	tokens *service.TokenService,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(tokens))

	// Handlers
	authHandler := NewAuthHandler(userService, logger)
	materialHandler := NewMaterialHandler(materialService, logger)
	productTypeHandler := NewProductTypeHandler(productTypeService, logger)
	itemHandler := NewItemHandler(itemService, logger)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
	})

	r.Route("/materials", func(r chi.Router) {
		r.Post("/", materialHandler.Create)
		r.Get("/", materialHandler.List)
		r.Get("/{id}", materialHandler.Get)
		r.Put("/{id}", materialHandler.Update)
		r.Delete("/{id}", materialHandler.Delete)
	})

	r.Route("/product-types", func(r chi.Router) {
		r.Post("/", productTypeHandler.Create)
		r.Get("/", productTypeHandler.List)
		r.Get("/{id}", productTypeHandler.Get)
		r.Put("/{id}", productTypeHandler.Update)
		r.Delete("/{id}", productTypeHandler.Delete)
	})

	r.Route("/items", func(r chi.Router) {
		r.Post("/", itemHandler.Create)
		r.Get("/", itemHandler.List)
		r.Get("/{id}", itemHandler.Get)
		r.Put("/{id}", itemHandler.Update)
		r.Delete("/{id}", itemHandler.Delete)
	})

	return &Handler{Router: r}
}
