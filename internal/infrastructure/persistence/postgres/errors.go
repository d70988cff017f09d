package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/errs"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

var uniqueMessages = map[string]string{
	"users_email_key":   "El correo ya está registrado.",
	"products_code_key": "El código ya está registrado",
	"clients_ci_key":    "El CI ya está registrado.",
	"orders_code_key":   "El código de pedido ya está registrado",
}

// classify turns a driver error into one of the errs kinds.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			msg, ok := uniqueMessages[pgErr.ConstraintName]
			if !ok {
				msg = "El registro ya existe"
			}
			return errs.Conflict(msg, err)
		case codeForeignKeyViolation:
			return errs.Conflict("El registro está referenciado por otro registro", err)
		}
	}

	return errs.Store(op, err)
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
