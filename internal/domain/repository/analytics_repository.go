package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// InventorySummary agregados del inventario de un usuario para el dashboard.
type InventorySummary struct {
	TotalProducts  int
	TotalUnits     int
	InventoryValue decimal.Decimal // SUM(price * quantity)
	LowStockCount  int             // productos con quantity <= low_stock_at
}

// WeeklyCount productos creados en una semana (lunes como inicio).
type WeeklyCount struct {
	WeekStart time.Time
	Products  int
}

// AnalyticsRepository consultas de solo lectura para el dashboard.
type AnalyticsRepository interface {
	GetInventorySummary(ctx context.Context, userID string) (InventorySummary, error)
	// GetWeeklyProductCounts devuelve la serie de productos creados por semana
	// para las últimas `weeks` semanas, incluyendo semanas con cero.
	GetWeeklyProductCounts(ctx context.Context, userID string, weeks int) ([]WeeklyCount, error)
}
