package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Inventario-web/internal/application/dto"
	"github.com/jhoicas/Inventario-web/internal/domain"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
	"github.com/jhoicas/Inventario-web/internal/domain/repository"
	"github.com/jhoicas/Inventario-web/pkg/validator"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// PageSize tamaño fijo de página del listado.
const PageSize = 5

// ProductUseCase casos de uso del inventario: listar, crear y eliminar.
// No hay edición: los productos se crean o se eliminan.
type ProductUseCase struct {
	repo repository.ProductRepository
	val  validator.Validator
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, val validator.Validator) *ProductUseCase {
	return &ProductUseCase{repo: repo, val: val}
}

// ListPage devuelve una página del listado del usuario.
// q se recorta; vacío significa sin filtro. page se lleva a mínimo 1, nunca
// produce offset negativo. Conteo y página usan el mismo filtro; entre ambas
// llamadas no hay aislamiento más allá del que dé la base de datos.
func (uc *ProductUseCase) ListPage(ctx context.Context, userID, q string, page int) (*dto.ProductPage, error) {
	q = strings.TrimSpace(q)
	if page < 1 {
		page = 1
	}
	f := repository.ProductFilter{UserID: userID, Search: q}

	total, err := uc.repo.CountByOwner(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	items, err := uc.repo.ListByOwner(ctx, f, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}

	return &dto.ProductPage{
		Items:      toProductViews(items),
		Query:      q,
		Page:       page,
		PageSize:   PageSize,
		TotalCount: total,
		TotalPages: TotalPages(total),
	}, nil
}

// TotalPages calcula max(1, ceil(total / PageSize)).
func TotalPages(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + PageSize - 1) / PageSize
}

// productInput campos ya coaccionados del alta, validados con tags.
type productInput struct {
	Name       string `validate:"required,min=1,max=200"`
	SKU        string `validate:"omitempty,max=100"`
	Quantity   int    `validate:"gte=0"`
	LowStockAt *int   `validate:"omitempty,gte=0"`
}

// Create valida, coacciona y persiste un nuevo producto del usuario.
// Cualquier fallo de coerción o constraint es un único fallo agregado
// (domain.ErrInvalidInput); no hay reporte por campo.
func (uc *ProductUseCase) Create(ctx context.Context, userID string, form dto.CreateProductForm) error {
	price, err := coerceDecimal(form.Price)
	if err != nil || price.IsNegative() {
		return domain.ErrInvalidInput
	}
	quantity, err := coerceInt(form.Quantity)
	if err != nil {
		return domain.ErrInvalidInput
	}
	lowStockAt, err := coerceOptionalInt(form.LowStockAt)
	if err != nil {
		return domain.ErrInvalidInput
	}

	in := productInput{
		Name:       strings.TrimSpace(form.Name),
		SKU:        strings.TrimSpace(form.SKU),
		Quantity:   quantity,
		LowStockAt: lowStockAt,
	}
	if err := uc.val.Validate(in); err != nil {
		// Un fallo de campos es esperado; cualquier otro error del validador no.
		if !validator.IsValidationError(err) {
			log.Error().Err(err).Msg("validación de producto falló")
		}
		return domain.ErrInvalidInput
	}

	var sku *string
	if in.SKU != "" {
		sku = &in.SKU
	}
	product := &entity.Product{
		ID:         uuid.New().String(),
		UserID:     userID,
		Name:       in.Name,
		SKU:        sku,
		Price:      price.Round(2), // precisión fija de moneda: 19.999 -> 20.00
		Quantity:   in.Quantity,
		LowStockAt: in.LowStockAt,
		CreatedAt:  time.Now(),
	}
	return uc.repo.Create(ctx, product)
}

// Delete elimina el producto (id, userID) y devuelve si el resultado es éxito.
// El delete es idempotente: un id inexistente o ya eliminado cuenta como éxito.
// Nunca propaga error; todos los caminos terminan en un outcome binario y el
// handler siempre redirige. Ante resultado ambiguo se reconcilia con una
// verificación de existencia y se falla hacia "fracaso" si tampoco se puede.
func (uc *ProductUseCase) Delete(ctx context.Context, userID, id string) bool {
	affected, err := uc.repo.DeleteScoped(ctx, id, userID)
	if err != nil {
		log.Error().Err(err).Str("product_id", id).Msg("delete de producto falló")
		// El delete pudo aplicarse antes de perderse la respuesta: verificar.
		exists, err2 := uc.repo.ExistsScoped(ctx, id, userID)
		if err2 != nil {
			log.Error().Err(err2).Str("product_id", id).Msg("reconciliación de delete falló")
			return false
		}
		return !exists
	}
	if affected > 0 {
		return true
	}
	// Cero filas afectadas: si ya no existe para este usuario, el delete es
	// exitoso (reintento o doble submit); si sigue existiendo, algo falló.
	exists, err := uc.repo.ExistsScoped(ctx, id, userID)
	if err != nil {
		log.Error().Err(err).Str("product_id", id).Msg("verificación post-delete falló")
		return false
	}
	return !exists
}

// coerceDecimal convierte el valor del form a decimal. Vacío cuenta como cero.
func coerceDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// coerceInt convierte el valor del form a entero no negativo. Vacío cuenta como cero.
func coerceInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// coerceOptionalInt convierte el valor opcional del form. Vacío es nil, no cero.
func coerceOptionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func toProductViews(list []*entity.Product) []dto.ProductView {
	views := make([]dto.ProductView, 0, len(list))
	for _, p := range list {
		views = append(views, toProductView(p))
	}
	return views
}

func toProductView(p *entity.Product) dto.ProductView {
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
	return v
}
