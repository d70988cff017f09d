package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/catalog"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/interfaces/http/handler"
)

type Handlers struct {
	Health      *handler.HealthHandler
	Users       *handler.UserHandler
	Orders      *handler.OrderHandler
	Products    *handler.CatalogHandler[catalog.Product]
	Clients     *handler.CatalogHandler[catalog.Client]
	Suppliers   *handler.CatalogHandler[catalog.Supplier]
	Carriers    *handler.CatalogHandler[catalog.Carrier]
	Insurances  *handler.CatalogHandler[catalog.Insurance]
	BorderCosts *handler.CatalogHandler[catalog.BorderCost]
	TaxRates    *handler.CatalogHandler[catalog.TaxRate]
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/", h.Health.Banner)
	r.GET("/healthz", h.Health.Healthz)

	r.POST("/register", h.Users.Register)
	r.POST("/login", h.Users.Login)

	orders := r.Group("/pedidos")
	{
		orders.GET("", h.Orders.List)
		orders.GET("/:id", h.Orders.Get)
		orders.POST("", h.Orders.Create)
		orders.PUT("/:id", h.Orders.Update)
		orders.DELETE("/:id", h.Orders.Delete)
	}

	catalogRoutes(r, "/productos", h.Products)
	catalogRoutes(r, "/clientes", h.Clients)
	catalogRoutes(r, "/proveedores", h.Suppliers)
	catalogRoutes(r, "/transportadoras", h.Carriers)
	catalogRoutes(r, "/seguros", h.Insurances)
	catalogRoutes(r, "/costos-fronterizos", h.BorderCosts)
	catalogRoutes(r, "/tasas-impositivas", h.TaxRates)
}

func catalogRoutes[T any](r *gin.Engine, path string, h *handler.CatalogHandler[T]) {
	g := r.Group(path)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
