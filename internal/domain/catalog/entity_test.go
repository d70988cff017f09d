package catalog

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/errs"
)

func TestProduct_Validate(t *testing.T) {
	valid := Product{Code: "P-1", Name: "Olla", UnitPrice: decimal.NewFromInt(10), UnitWeightKg: decimal.NewFromFloat(1.5)}

	tests := []struct {
		name    string
		product Product
		op      Op
		wantErr bool
	}{
		{name: "valid create", product: valid, op: OpCreate},
		{name: "missing code on create", product: Product{Name: "Olla", UnitPrice: valid.UnitPrice, UnitWeightKg: valid.UnitWeightKg}, op: OpCreate, wantErr: true},
		{name: "code not needed on update", product: Product{Name: "Olla", UnitPrice: valid.UnitPrice, UnitWeightKg: valid.UnitWeightKg}, op: OpUpdate},
		{name: "zero price", product: Product{Code: "P-1", Name: "Olla", UnitWeightKg: valid.UnitWeightKg}, op: OpCreate, wantErr: true},
		{name: "negative weight", product: Product{Code: "P-1", Name: "Olla", UnitPrice: valid.UnitPrice, UnitWeightKg: decimal.NewFromInt(-1)}, op: OpCreate, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate(tt.op)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var vErr *errs.ValidationError
			assert.True(t, errors.As(err, &vErr))
		})
	}
}

func TestBorderCost_Validate(t *testing.T) {
	assert.NoError(t, BorderCost{CostType: "aduana", Cost: decimal.NewFromInt(5)}.Validate(OpCreate))
	assert.Error(t, BorderCost{CostType: " ", Cost: decimal.NewFromInt(5)}.Validate(OpCreate))
	assert.Error(t, BorderCost{CostType: "aduana"}.Validate(OpUpdate))
}

func TestClient_Validate(t *testing.T) {
	assert.NoError(t, Client{CI: "123", Name: "Ana", Type: "mayorista"}.Validate(OpCreate))
	assert.Error(t, Client{Name: "Ana", Type: "mayorista"}.Validate(OpCreate))
	assert.NoError(t, Client{Name: "Ana", Type: "mayorista"}.Validate(OpUpdate))
}
