package repository

import (
	"context"

	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

// ProductFilter describe el subconjunto de productos de un usuario sobre el que
// operan el conteo y el listado. Search vacío significa "sin filtro de nombre";
// no vacío aplica substring case-insensitive sobre Name. El conteo y la página
// deben ejecutarse con el mismo filtro para ser coherentes entre sí.
type ProductFilter struct {
	UserID string
	Search string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las operaciones llevan el propietario en el predicado; el orden del
// listado es created_at DESC con id DESC como desempate determinista.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	CountByOwner(ctx context.Context, f ProductFilter) (int, error)
	ListByOwner(ctx context.Context, f ProductFilter, limit, offset int) ([]*entity.Product, error)
	// ListAllByOwner devuelve todos los productos que cumplen el filtro, sin
	// paginar, en el mismo orden del listado. Lo usa el reporte PDF.
	ListAllByOwner(ctx context.Context, f ProductFilter) ([]*entity.Product, error)
	// DeleteScoped elimina el producto (id, userID) y devuelve filas afectadas.
	// Un id inexistente o ajeno no es error: simplemente afecta cero filas.
	DeleteScoped(ctx context.Context, id, userID string) (int64, error)
	// ExistsScoped verifica si existe un producto (id, userID). Se usa para
	// reconciliar resultados ambiguos del delete.
	ExistsScoped(ctx context.Context, id, userID string) (bool, error)
}
