package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/usecase"
)

func intPtr(n int) *int { return &n }

// Crear un artículo devuelve un ID no vacío y distinto en cada inserción.
func TestItemCreate_IDsDistintos(t *testing.T) {
	store := newFakeStore()
	uc := usecase.NewItemUseCase(store)

	id1, err := uc.Create(context.Background(), dto.CreateItemRequest{SKU: "A1", Name: "Widget"})
	require.NoError(t, err)
	id2, err := uc.Create(context.Background(), dto.CreateItemRequest{SKU: "A2", Name: "Gadget"})
	require.NoError(t, err)

	assert.NotEmpty(t, id1)
	assert.NotEmpty(t, id2)
	assert.NotEqual(t, id1, id2)
}

// Unit y MinStock ausentes toman los valores por defecto: "pcs" y 0.
func TestItemCreate_ValoresPorDefecto(t *testing.T) {
	store := newFakeStore()
	uc := usecase.NewItemUseCase(store)

	_, err := uc.Create(context.Background(), dto.CreateItemRequest{SKU: "A1", Name: "Widget"})
	require.NoError(t, err)

	items, err := uc.List(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "pcs", items[0].Unit)
	assert.Equal(t, 0, items[0].MinStock)
}

// Valores explícitos no se pisan con los por defecto.
func TestItemCreate_ValoresExplicitos(t *testing.T) {
	store := newFakeStore()
	uc := usecase.NewItemUseCase(store)

	_, err := uc.Create(context.Background(), dto.CreateItemRequest{
		SKU: "A1", Name: "Cable", Description: "Cable UTP cat6", Unit: "m", MinStock: intPtr(25),
	})
	require.NoError(t, err)

	items, err := uc.List(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "m", items[0].Unit)
	assert.Equal(t, 25, items[0].MinStock)
	assert.Equal(t, "Cable UTP cat6", items[0].Description)
}

// El filtro q es substring case-insensitive sobre el nombre; q vacío no filtra.
func TestItemList_FiltroPorNombre(t *testing.T) {
	store := newFakeStore()
	uc := usecase.NewItemUseCase(store)
	ctx := context.Background()

	for _, name := range []string{"Tornillo M4", "Tuerca M4", "Arandela"} {
		_, err := uc.Create(ctx, dto.CreateItemRequest{SKU: "S-" + name, Name: name})
		require.NoError(t, err)
	}

	all, err := uc.List(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	m4, err := uc.List(ctx, "m4", 0)
	require.NoError(t, err)
	require.Len(t, m4, 2)
	for _, it := range m4 {
		assert.Contains(t, it.Name, "M4")
	}

	none, err := uc.List(ctx, "inexistente", 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

// El listado respeta el tope y mantiene el orden de inserción.
func TestItemList_TopeYOrdenDeInsercion(t *testing.T) {
	store := newFakeStore()
	uc := usecase.NewItemUseCase(store)
	ctx := context.Background()

	names := []string{"Zeta", "Alfa", "Media"}
	for _, name := range names {
		_, err := uc.Create(ctx, dto.CreateItemRequest{SKU: "S-" + name, Name: name})
		require.NoError(t, err)
	}

	out, err := uc.List(ctx, "", 2)
	require.NoError(t, err)
	require.Len(t, out, 2)
	// Orden nativo del store = orden de inserción, no alfabético
	assert.Equal(t, "Zeta", out[0].Name)
	assert.Equal(t, "Alfa", out[1].Name)
}
