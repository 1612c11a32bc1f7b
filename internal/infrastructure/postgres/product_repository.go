package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
	"github.com/jhoicas/Inventario-web/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, user_id, name, sku, price, quantity, low_stock_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.UserID, product.Name, product.SKU,
		product.Price, product.Quantity, product.LowStockAt, product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// escapeLike escapa los metacaracteres de LIKE para que el término del usuario
// se compare como substring literal: "50%" busca "50%", no "50" seguido de
// cualquier cosa.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// filterWhere construye el predicado compartido entre conteo y página.
// Ambas consultas deben observar el mismo conjunto lógico de filas.
func filterWhere(f repository.ProductFilter) (string, []any) {
	if f.Search == "" {
		return `WHERE user_id = $1`, []any{f.UserID}
	}
	return `WHERE user_id = $1 AND name ILIKE '%' || $2 || '%' ESCAPE '\'`, []any{f.UserID, escapeLike(f.Search)}
}

// CountByOwner cuenta los productos del usuario que cumplen el filtro.
func (r *ProductRepo) CountByOwner(ctx context.Context, f repository.ProductFilter) (int, error) {
	where, args := filterWhere(f)
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products `+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// ListByOwner lista una página de productos del usuario, mismo filtro que el conteo.
// Orden fijo: created_at DESC, id DESC (desempate determinista bajo timestamps iguales).
func (r *ProductRepo) ListByOwner(ctx context.Context, f repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	where, args := filterWhere(f)
	query := fmt.Sprintf(`
		SELECT id, user_id, name, sku, price, quantity, low_stock_at, created_at
		FROM products %s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.SKU, &p.Price, &p.Quantity, &p.LowStockAt, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListAllByOwner devuelve todos los productos del filtro sin paginar (reporte PDF).
func (r *ProductRepo) ListAllByOwner(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	where, args := filterWhere(f)
	query := `
		SELECT id, user_id, name, sku, price, quantity, low_stock_at, created_at
		FROM products ` + where + `
		ORDER BY created_at DESC, id DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.SKU, &p.Price, &p.Quantity, &p.LowStockAt, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// DeleteScoped elimina el producto (id, userID) en una sola sentencia atómica
// y devuelve las filas afectadas. Cero filas no es error.
func (r *ProductRepo) DeleteScoped(ctx context.Context, id, userID string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return 0, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// ExistsScoped verifica si existe el producto (id, userID).
func (r *ProductRepo) ExistsScoped(ctx context.Context, id, userID string) (bool, error) {
	var one int
	err := r.q.QueryRow(ctx, `SELECT 1 FROM products WHERE id = $1 AND user_id = $2`, id, userID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("exists product: %w", err)
	}
	return true, nil
}
