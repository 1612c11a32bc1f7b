package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-web/internal/application/usecase"
	"github.com/jhoicas/Inventario-web/internal/domain/entity"
)

// stubGenerator captura los argumentos recibidos y devuelve un documento fijo.
type stubGenerator struct {
	gotOwner  string
	gotSearch string
	gotNames  []string
	err       error
}

func (s *stubGenerator) GenerateInventoryReport(_ context.Context, ownerName, search string, products []*entity.Product, _ time.Time) ([]byte, error) {
	s.gotOwner = ownerName
	s.gotSearch = search
	s.gotNames = nil
	for _, p := range products {
		s.gotNames = append(s.gotNames, p.Name)
	}
	if s.err != nil {
		return nil, s.err
	}
	return []byte("%PDF-stub"), nil
}

// El reporte usa el filtro vigente sin paginar y conserva el orden del listado.
func TestBuildReport_FiltraSinPaginar(t *testing.T) {
	repo := &fakeProductRepo{}
	seedSequence(repo, userA, 7)
	gen := &stubGenerator{}
	uc := usecase.NewReportUseCase(repo, gen)

	doc, err := uc.BuildReport(context.Background(), userA, "Ana", "  producto ")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), doc)

	assert.Equal(t, "Ana", gen.gotOwner)
	assert.Equal(t, "producto", gen.gotSearch, "el término viaja recortado")
	require.Len(t, gen.gotNames, 7, "todas las filas del filtro, no una página")
	assert.Equal(t, "Producto 7", gen.gotNames[0], "mismo orden descendente del listado")
	assert.Equal(t, "Producto 1", gen.gotNames[6])
}

func TestBuildReport_ErrorDelGenerador(t *testing.T) {
	repo := &fakeProductRepo{}
	boom := errors.New("fuente no disponible")
	uc := usecase.NewReportUseCase(repo, &stubGenerator{err: boom})

	_, err := uc.BuildReport(context.Background(), userA, "Ana", "")
	assert.ErrorIs(t, err, boom)
}
