package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/Mario-Dorado/gestion-sistemas-backend/internal/application/user"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/user"
	"github.com/Mario-Dorado/gestion-sistemas-backend/pkg/logger"
)

type UserService interface {
	Register(ctx context.Context, cmd app.RegisterCommand) (*user.User, error)
	Login(ctx context.Context, cmd app.LoginCommand) (*user.User, error)
}

type UserHandler struct {
	svc UserService
	log logger.Logger
}

func NewUserHandler(svc UserService, log logger.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

func (h *UserHandler) Register(c *gin.Context) {
	var cmd app.RegisterCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		badRequest(c, "Todos los campos son obligatorios.")
		return
	}
	u, err := h.svc.Register(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, h.log, err, "Error al registrar usuario.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"mensaje": "Usuario registrado correctamente", "usuario": u})
}

func (h *UserHandler) Login(c *gin.Context) {
	var cmd app.LoginCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		badRequest(c, "Correo y contraseña requeridos.")
		return
	}
	u, err := h.svc.Login(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, h.log, err, "Error en login.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"mensaje": "Login exitoso",
		"usuario": gin.H{"id": u.ID, "nombre": u.Name, "email": u.Email},
	})
}
