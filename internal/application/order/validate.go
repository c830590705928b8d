package order

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

const maxNameLen = 255

// maxPrice es el primer valor que no cabe en NUMERIC(10,2).
var maxPrice = decimal.New(1, 8)

func checkName(v *domain.Validator, name string) {
	v.Check(strings.TrimSpace(name) != "", "name", "requerido")
	v.Check(len(name) <= maxNameLen, "name", "máximo 255 caracteres")
}

func checkPrice(v *domain.Validator, p *decimal.Decimal) {
	if p == nil {
		v.Check(false, "price", "requerido")
		return
	}
	v.Check(!p.IsNegative(), "price", "no puede ser negativo")
	v.Check(p.Equal(p.Round(2)), "price", "máximo 2 decimales")
	v.Check(p.LessThan(maxPrice), "price", "máximo 10 dígitos")
}

// availability devuelve el estado normalizado; vacío equivale a AVAILABLE.
func availability(v *domain.Validator, status string) string {
	if status == "" {
		return entity.StatusAvailable
	}
	v.Check(entity.ValidAvailability(status), "status", "debe ser AVAILABLE o UNAVAILABLE")
	return status
}

func checkDescription(v *domain.Validator, description string) {
	v.Check(strings.TrimSpace(description) != "", "description", "requerido")
}

// checkQuantity exige 1 <= q <= MaxInt32 (columna INTEGER).
func checkQuantity(v *domain.Validator, field string, q *int) {
	if q == nil {
		v.Check(false, field, "requerido")
		return
	}
	v.Check(*q >= 1, field, "debe ser mayor o igual a 1")
	v.Check(*q <= math.MaxInt32, field, "fuera de rango")
}

func checkTableNumber(v *domain.Validator, n *int) {
	if n == nil {
		v.Check(false, "number", "requerido")
		return
	}
	v.Check(*n >= math.MinInt32 && *n <= math.MaxInt32, "number", "fuera de rango")
}
