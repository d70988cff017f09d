package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/Mario-Dorado/gestion-sistemas-backend/internal/application/order"
	domain "github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/order"
	"github.com/Mario-Dorado/gestion-sistemas-backend/pkg/logger"
)

type OrderService interface {
	CreateOrder(ctx context.Context, cmd app.OrderCommand) (*domain.View, error)
	UpdateOrder(ctx context.Context, id int64, cmd app.OrderCommand) (*domain.View, error)
	DeleteOrder(ctx context.Context, id int64) error
	ListOrders(ctx context.Context) ([]*domain.View, error)
	GetOrder(ctx context.Context, id int64) (*domain.View, error)
}

type OrderHandler struct {
	svc OrderService
	log logger.Logger
}

func NewOrderHandler(svc OrderService, log logger.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, log: log}
}

func (h *OrderHandler) List(c *gin.Context) {
	views, err := h.svc.ListOrders(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err, "Error al obtener pedidos")
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.svc.GetOrder(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err, "Error al obtener el pedido")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var cmd app.OrderCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		badRequest(c, "Faltan campos obligatorios o productos para crear el pedido.")
		return
	}

	view, err := h.svc.CreateOrder(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, h.log, err, "Error al crear el pedido.")
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var cmd app.OrderCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		badRequest(c, "Faltan campos obligatorios o productos para actualizar el pedido.")
		return
	}

	view, err := h.svc.UpdateOrder(c.Request.Context(), id, cmd)
	if err != nil {
		writeError(c, h.log, err, "Error al actualizar el pedido")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteOrder(c.Request.Context(), id); err != nil {
		writeError(c, h.log, err, "Error al eliminar pedido")
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Pedido eliminado correctamente"})
}
