package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/errs"
)

// Op tells Validate which fields a write is allowed to carry.
type Op int

const (
	OpCreate Op = iota
	OpUpdate
)

// Entity is implemented by every master-data record.
type Entity interface {
	Validate(op Op) error
}

type Product struct {
	ID           int64           `json:"id" db:"id"`
	Code         string          `json:"codigo" db:"code"`
	Name         string          `json:"nombre" db:"name"`
	UnitPrice    decimal.Decimal `json:"precioUnitario" db:"unit_price"`
	UnitWeightKg decimal.Decimal `json:"pesoKg" db:"unit_weight_kg"`
}

func (p Product) Validate(op Op) error {
	if op == OpCreate && blank(p.Code) {
		return errs.Validation("Datos inválidos o incompletos")
	}
	if blank(p.Name) || !p.UnitPrice.IsPositive() || !p.UnitWeightKg.IsPositive() {
		return errs.Validation("Datos inválidos o incompletos")
	}
	return nil
}

type Client struct {
	ID   int64  `json:"id" db:"id"`
	CI   string `json:"ci" db:"ci"`
	Name string `json:"nombre" db:"name"`
	Type string `json:"tipo" db:"type"`
}

func (c Client) Validate(op Op) error {
	if op == OpCreate && blank(c.CI) {
		return errs.Validation("Todos los campos son obligatorios.")
	}
	if blank(c.Name) || blank(c.Type) {
		return errs.Validation("Nombre y tipo son obligatorios")
	}
	return nil
}

type Supplier struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"nombre" db:"name"`
	Country string `json:"pais" db:"country"`
	Contact string `json:"contacto" db:"contact"`
}

func (s Supplier) Validate(Op) error {
	if blank(s.Name) || blank(s.Country) || blank(s.Contact) {
		return errs.Validation("Todos los campos son obligatorios")
	}
	return nil
}

type Carrier struct {
	ID       int64           `json:"id" db:"id"`
	Name     string          `json:"nombre" db:"name"`
	Contact  string          `json:"contacto" db:"contact"`
	BaseCost decimal.Decimal `json:"costoBase" db:"base_cost"`
}

func (c Carrier) Validate(Op) error {
	if blank(c.Name) || blank(c.Contact) || !c.BaseCost.IsPositive() {
		return errs.Validation("Todos los campos son obligatorios y válidos")
	}
	return nil
}

type Insurance struct {
	ID           int64           `json:"id" db:"id"`
	Name         string          `json:"nombre" db:"name"`
	CoverageType string          `json:"tipoCobertura" db:"coverage_type"`
	Cost         decimal.Decimal `json:"costo" db:"cost"`
}

func (i Insurance) Validate(Op) error {
	if blank(i.Name) || blank(i.CoverageType) || !i.Cost.IsPositive() {
		return errs.Validation("Todos los campos son obligatorios y válidos")
	}
	return nil
}

type TaxRate struct {
	ID         int64           `json:"id" db:"id"`
	Name       string          `json:"nombre" db:"name"`
	Percentage decimal.Decimal `json:"porcentaje" db:"percentage"`
}

func (t TaxRate) Validate(Op) error {
	if blank(t.Name) || !t.Percentage.IsPositive() {
		return errs.Validation("Todos los campos son obligatorios y válidos")
	}
	return nil
}

// BorderCost is a customs fee. Orders that opt in pay the sum of all of them.
type BorderCost struct {
	ID       int64           `json:"id" db:"id"`
	CostType string          `json:"tipoCosto" db:"cost_type"`
	Cost     decimal.Decimal `json:"costo" db:"cost"`
}

func (b BorderCost) Validate(Op) error {
	if blank(b.CostType) || !b.Cost.IsPositive() {
		return errs.Validation("Todos los campos son obligatorios y válidos")
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
