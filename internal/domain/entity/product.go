package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario personal de un usuario.
// Pertenece siempre a exactamente un usuario (UserID); toda lectura, conteo o
// eliminación incluye el predicado de propietario en la consulta, nunca se
// filtra después. No existe operación de edición: se crea o se elimina.
type Product struct {
	ID         string
	UserID     string
	Name       string
	SKU        *string         // opcional, sin constraint de unicidad
	Price      decimal.Decimal // NUMERIC(12,2), nunca float binario
	Quantity   int
	LowStockAt *int      // umbral opcional de stock bajo
	CreatedAt  time.Time // clave de orden del listado (DESC, ID desempata)
}

// LowStock indica si el producto está en o por debajo de su umbral de stock bajo.
func (p *Product) LowStock() bool {
	return p.LowStockAt != nil && p.Quantity <= *p.LowStockAt
}
