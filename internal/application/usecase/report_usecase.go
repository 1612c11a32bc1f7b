package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-web/internal/domain/entity"
	"github.com/jhoicas/Inventario-web/internal/domain/repository"
)

// InventoryReportGenerator puerto para la generación del reporte PDF.
type InventoryReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, ownerName, search string, products []*entity.Product, generatedAt time.Time) ([]byte, error)
}

// ReportUseCase genera el reporte PDF del inventario con el filtro vigente.
type ReportUseCase struct {
	repo      repository.ProductRepository
	generator InventoryReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ProductRepository, generator InventoryReportGenerator) *ReportUseCase {
	return &ReportUseCase{repo: repo, generator: generator}
}

// BuildReport consulta todos los productos del filtro (sin paginar, mismo orden
// del listado) y genera el PDF.
func (uc *ReportUseCase) BuildReport(ctx context.Context, userID, ownerName, q string) ([]byte, error) {
	q = strings.TrimSpace(q)
	products, err := uc.repo.ListAllByOwner(ctx, repository.ProductFilter{UserID: userID, Search: q})
	if err != nil {
		return nil, fmt.Errorf("reporte de inventario: %w", err)
	}
	return uc.generator.GenerateInventoryReport(ctx, ownerName, q, products, time.Now())
}
