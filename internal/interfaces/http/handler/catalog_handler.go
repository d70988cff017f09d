package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mario-Dorado/gestion-sistemas-backend/pkg/logger"
)

type CatalogService[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, entity T) (*T, error)
	Update(ctx context.Context, id int64, entity T) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// CatalogMessages are the user-facing texts of one resource.
type CatalogMessages struct {
	ListFailed   string
	GetFailed    string
	CreateFailed string
	UpdateFailed string
	DeleteFailed string
	Deleted      string
}

type CatalogHandler[T any] struct {
	svc  CatalogService[T]
	msgs CatalogMessages
	log  logger.Logger
}

func NewCatalogHandler[T any](svc CatalogService[T], msgs CatalogMessages, log logger.Logger) *CatalogHandler[T] {
	return &CatalogHandler[T]{svc: svc, msgs: msgs, log: log}
}

func (h *CatalogHandler[T]) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err, h.msgs.ListFailed)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler[T]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err, h.msgs.GetFailed)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler[T]) Create(c *gin.Context) {
	var body T
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "Datos inválidos o incompletos")
		return
	}
	created, err := h.svc.Create(c.Request.Context(), body)
	if err != nil {
		writeError(c, h.log, err, h.msgs.CreateFailed)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler[T]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body T
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "Datos inválidos para actualizar")
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), id, body)
	if err != nil {
		writeError(c, h.log, err, h.msgs.UpdateFailed)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CatalogHandler[T]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.log, err, h.msgs.DeleteFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": h.msgs.Deleted})
}
