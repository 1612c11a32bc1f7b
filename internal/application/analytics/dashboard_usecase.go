// Package analytics contiene el caso de uso del dashboard del inventario.
package analytics

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jhoicas/Inventario-web/internal/application/dto"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
	"github.com/jhoicas/Inventario-web/internal/domain/repository"
)

const (
	dashboardWeeks  = 8 // semanas de la serie del gráfico
	dashboardRecent = 5 // productos recientes en el widget
)

// DashboardUseCase genera el resumen del inventario del usuario.
//
// Fuente de datos: AnalyticsRepository (consultas read-only) más el listado de
// recientes del ProductRepository. Tres consultas en paralelo.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	productRepo   repository.ProductRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, productRepo repository.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, productRepo: productRepo}
}

// GetSummary construye el DashboardSummary para el usuario indicado.
//
// Tres llamadas en paralelo:
//  1. GetInventorySummary        → totales y valor del inventario
//  2. GetWeeklyProductCounts(8)  → serie del gráfico
//  3. ListByOwner(5, 0)          → productos recientes
func (uc *DashboardUseCase) GetSummary(ctx context.Context, userID string) (*dto.DashboardSummary, error) {
	type summaryResult struct {
		summary repository.InventorySummary
		err     error
	}
	type weeklyResult struct {
		weeks []repository.WeeklyCount
		err   error
	}
	type recentResult struct {
		items []*entity.Product
		err   error
	}

	summaryCh := make(chan summaryResult, 1)
	weeklyCh := make(chan weeklyResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		s, err := uc.analyticsRepo.GetInventorySummary(ctx, userID)
		summaryCh <- summaryResult{s, err}
	}()
	go func() {
		w, err := uc.analyticsRepo.GetWeeklyProductCounts(ctx, userID, dashboardWeeks)
		weeklyCh <- weeklyResult{w, err}
	}()
	go func() {
		items, err := uc.productRepo.ListByOwner(ctx, repository.ProductFilter{UserID: userID}, dashboardRecent, 0)
		recentCh <- recentResult{items, err}
	}()

	summary := <-summaryCh
	weekly := <-weeklyCh
	recent := <-recentCh

	if summary.err != nil {
		return nil, fmt.Errorf("dashboard: resumen: %w", summary.err)
	}
	if weekly.err != nil {
		return nil, fmt.Errorf("dashboard: serie semanal: %w", weekly.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: recientes: %w", recent.err)
	}

	return &dto.DashboardSummary{
		TotalProducts:  summary.summary.TotalProducts,
		TotalUnits:     summary.summary.TotalUnits,
		InventoryValue: summary.summary.InventoryValue.StringFixed(2),
		LowStockCount:  summary.summary.LowStockCount,
		Weekly:         toWeekPoints(weekly.weeks),
		Recent:         toRecentViews(recent.items),
	}, nil
}

// toWeekPoints normaliza la serie para el gráfico de barras del template.
// Percent es la altura relativa respecto de la semana con más altas.
func toWeekPoints(weeks []repository.WeeklyCount) []dto.WeekPoint {
	max := 0
	for _, w := range weeks {
		if w.Products > max {
			max = w.Products
		}
	}
	points := make([]dto.WeekPoint, 0, len(weeks))
	for _, w := range weeks {
		percent := 0
		if max > 0 {
			percent = w.Products * 100 / max
		}
		points = append(points, dto.WeekPoint{
			Label:    w.WeekStart.Format("02/01"),
			Products: w.Products,
			Percent:  percent,
		})
	}
	return points
}

func toRecentViews(list []*entity.Product) []dto.ProductView {
	views := make([]dto.ProductView, 0, len(list))
	for _, p := range list {
		v := dto.ProductView{
			ID:        p.ID,
			Name:      p.Name,
			Price:     p.Price.StringFixed(2),
			Quantity:  p.Quantity,
			LowStock:  p.LowStock(),
			CreatedAt: p.CreatedAt,
		}
		if p.SKU != nil {
			v.SKU = *p.SKU
		}
		if p.LowStockAt != nil {
			v.LowStockAt = strconv.Itoa(*p.LowStockAt)
		}
		views = append(views, v)
	}
	return views
}
