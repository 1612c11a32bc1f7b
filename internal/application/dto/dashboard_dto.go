package dto

// WeekPoint un punto de la serie semanal del dashboard.
type WeekPoint struct {
	Label    string // inicio de semana dd/mm, ej. "04/08"
	Products int
	Percent  int // altura relativa de la barra (0-100)
}

// DashboardSummary resumen del inventario para el dashboard.
type DashboardSummary struct {
	TotalProducts  int
	TotalUnits     int
	InventoryValue string // formateado a 2 decimales
	LowStockCount  int
	Weekly         []WeekPoint
	Recent         []ProductView
}
