package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/errs"
	"github.com/Mario-Dorado/gestion-sistemas-backend/pkg/logger"
)

func init() {
	// Clients send and expect plain JSON numbers for money and weight.
	decimal.MarshalJSONWithoutQuotes = true
}

// statusOf maps an error kind to its HTTP status.
func statusOf(err error) int {
	var (
		vErr *errs.ValidationError
		nErr *errs.NotFoundError
		cErr *errs.ConflictError
		uErr *errs.UnauthorizedError
	)
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.As(err, &nErr):
		return http.StatusNotFound
	case errors.As(err, &cErr):
		return http.StatusConflict
	case errors.As(err, &uErr):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with {"error": msg}. Client errors carry their own
// message; anything else gets fallback and is logged.
func writeError(c *gin.Context, log logger.Logger, err error, fallback string) {
	status := statusOf(err)
	if status != http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": clientMessage(err)})
		return
	}

	log.WithContext(c.Request.Context()).Error(fallback, logger.Error(err))
	c.JSON(status, gin.H{"error": fallback})
}

// clientMessage strips the "op: " prefixes services add while wrapping.
func clientMessage(err error) string {
	var (
		vErr *errs.ValidationError
		nErr *errs.NotFoundError
		cErr *errs.ConflictError
		uErr *errs.UnauthorizedError
	)
	switch {
	case errors.As(err, &vErr):
		return vErr.Error()
	case errors.As(err, &nErr):
		return nErr.Error()
	case errors.As(err, &cErr):
		return cErr.Error()
	case errors.As(err, &uErr):
		return uErr.Error()
	}
	return err.Error()
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "ID inválido")
		return 0, false
	}
	return id, true
}
