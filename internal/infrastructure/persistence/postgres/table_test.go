package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/errs"
)

func TestTable_SQL(t *testing.T) {
	assert.Equal(t,
		"SELECT id, code, name, unit_price, unit_weight_kg FROM products WHERE id = $1 ORDER BY id",
		productTable.selectSQL("WHERE id = $1"))

	assert.Equal(t,
		"INSERT INTO products (code, name, unit_price, unit_weight_kg) VALUES ($1, $2, $3, $4) RETURNING id, code, name, unit_price, unit_weight_kg",
		productTable.insertSQL())

	assert.Equal(t,
		"UPDATE products SET name = $1, unit_price = $2, unit_weight_kg = $3 WHERE id = $4 RETURNING id, code, name, unit_price, unit_weight_kg",
		productTable.updateSQL())

	assert.Equal(t,
		"UPDATE clients SET name = $1, type = $2 WHERE id = $3 RETURNING id, ci, name, type",
		clientTable.updateSQL())
}

func TestTable_ArgsMatchColumns(t *testing.T) {
	assert.Len(t, productTable.insertArgs(blankRecord(productTable)), len(productTable.insert))
	assert.Len(t, productTable.updateArgs(blankRecord(productTable)), len(productTable.update))
	assert.Len(t, clientTable.insertArgs(blankRecord(clientTable)), len(clientTable.insert))
	assert.Len(t, clientTable.updateArgs(blankRecord(clientTable)), len(clientTable.update))
	assert.Len(t, supplierTable.updateArgs(blankRecord(supplierTable)), len(supplierTable.update))
	assert.Len(t, carrierTable.updateArgs(blankRecord(carrierTable)), len(carrierTable.update))
	assert.Len(t, insuranceTable.updateArgs(blankRecord(insuranceTable)), len(insuranceTable.update))
	assert.Len(t, taxRateTable.updateArgs(blankRecord(taxRateTable)), len(taxRateTable.update))
	assert.Len(t, borderCostTable.updateArgs(blankRecord(borderCostTable)), len(borderCostTable.update))
	assert.Len(t, userTable.insertArgs(blankRecord(userTable)), len(userTable.insert))
}

func blankRecord[T any](table[T]) *T {
	return new(T)
}

func TestClassify(t *testing.T) {
	t.Run("unique violation on known constraint", func(t *testing.T) {
		err := classify("insert", &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "orders_code_key"})

		var conflict *errs.ConflictError
		assert.True(t, errors.As(err, &conflict))
		assert.Equal(t, "El código de pedido ya está registrado", conflict.Msg)
	})

	t.Run("foreign key violation", func(t *testing.T) {
		err := classify("delete", &pgconn.PgError{Code: codeForeignKeyViolation})

		var conflict *errs.ConflictError
		assert.True(t, errors.As(err, &conflict))
	})

	t.Run("anything else is a store error", func(t *testing.T) {
		base := errors.New("conn closed")
		err := classify("list orders", base)

		var storeErr *errs.StoreError
		assert.True(t, errors.As(err, &storeErr))
		assert.Equal(t, "list orders", storeErr.Op)
		assert.ErrorIs(t, err, base)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, classify("noop", nil))
	})
}
