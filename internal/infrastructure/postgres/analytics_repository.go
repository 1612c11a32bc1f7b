package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-web/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard del inventario.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetInventorySummary devuelve los agregados del inventario del usuario.
// COALESCE protege el caso sin productos (todo en cero).
func (r *AnalyticsRepo) GetInventorySummary(ctx context.Context, userID string) (repository.InventorySummary, error) {
	const query = `
	SELECT
	    COUNT(*)                                                              AS total_products,
	    COALESCE(SUM(quantity), 0)                                            AS total_units,
	    COALESCE(SUM(price * quantity), 0)                                    AS inventory_value,
	    COUNT(*) FILTER (WHERE low_stock_at IS NOT NULL
	                       AND quantity <= low_stock_at)                      AS low_stock_count
	FROM products
	WHERE user_id = $1`

	var s repository.InventorySummary
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&s.TotalProducts, &s.TotalUnits, &s.InventoryValue, &s.LowStockCount,
	)
	if err != nil {
		return repository.InventorySummary{}, fmt.Errorf("analytics.GetInventorySummary: %w", err)
	}
	return s, nil
}

// GetWeeklyProductCounts devuelve productos creados por semana para las últimas
// `weeks` semanas. generate_series garantiza las semanas sin altas (cero).
func (r *AnalyticsRepo) GetWeeklyProductCounts(ctx context.Context, userID string, weeks int) ([]repository.WeeklyCount, error) {
	const query = `
	WITH series AS (
	    SELECT generate_series(
	        date_trunc('week', now()) - ($2::INT - 1) * INTERVAL '1 week',
	        date_trunc('week', now()),
	        INTERVAL '1 week'
	    ) AS week_start
	)
	SELECT
	    s.week_start,
	    COUNT(p.id) AS products
	FROM series s
	LEFT JOIN products p
	       ON p.user_id = $1
	      AND date_trunc('week', p.created_at) = s.week_start
	GROUP BY s.week_start
	ORDER BY s.week_start`

	rows, err := r.q.Query(ctx, query, userID, weeks)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetWeeklyProductCounts: %w", err)
	}
	defer rows.Close()

	var results []repository.WeeklyCount
	for rows.Next() {
		var row repository.WeeklyCount
		if err := rows.Scan(&row.WeekStart, &row.Products); err != nil {
			return nil, fmt.Errorf("analytics.GetWeeklyProductCounts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
