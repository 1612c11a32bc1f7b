package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-web/internal/domain/repository"
)

// Los metacaracteres de LIKE en el término del usuario se comparan literales:
// buscar "50%" no puede comportarse como "50" seguido de comodín.
func TestEscapeLike(t *testing.T) {
	cases := map[string]string{
		"teclado":     "teclado",
		"50%":         `50\%`,
		"a_b":         `a\_b`,
		`c:\ruta`:     `c:\\ruta`,
		`100%_listo\`: `100\%\_listo\\`,
		"":            "",
	}
	for in, want := range cases {
		assert.Equal(t, want, escapeLike(in), "término %q", in)
	}
}

// El predicado con búsqueda lleva el término ya escapado y declara ESCAPE,
// y sin búsqueda no agrega la condición ILIKE.
func TestFilterWhere(t *testing.T) {
	where, args := filterWhere(repository.ProductFilter{UserID: "user-a", Search: "50%"})
	assert.Contains(t, where, "ILIKE")
	assert.Contains(t, where, `ESCAPE '\'`)
	require.Len(t, args, 2)
	assert.Equal(t, "user-a", args[0])
	assert.Equal(t, `50\%`, args[1])

	where, args = filterWhere(repository.ProductFilter{UserID: "user-a"})
	assert.NotContains(t, where, "ILIKE")
	assert.Equal(t, []any{"user-a"}, args)
}
