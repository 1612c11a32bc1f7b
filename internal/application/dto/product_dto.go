package dto

import "time"

// CreateProductForm campos crudos del formulario de alta. Todos llegan como
// string del form POST; la coerción numérica ocurre en el caso de uso.
type CreateProductForm struct {
	Name       string `form:"name"`
	Price      string `form:"price"`
	Quantity   string `form:"quantity"`
	SKU        string `form:"sku"`
	LowStockAt string `form:"lowStockAt"`
}

// ProductView fila del listado lista para renderizar.
type ProductView struct {
	ID         string
	Name       string
	SKU        string // "" si no tiene
	Price      string // formateado a 2 decimales
	Quantity   int
	LowStockAt string // "" si no tiene umbral
	LowStock   bool
	CreatedAt  time.Time
}

// ProductPage una página del listado más los metadatos de paginación.
type ProductPage struct {
	Items      []ProductView
	Query      string
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
}
