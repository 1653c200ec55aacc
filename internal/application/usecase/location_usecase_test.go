package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/usecase"
)

// Type ausente toma "bin" por defecto; explícito se respeta.
func TestLocationCreate_TipoPorDefecto(t *testing.T) {
	store := newFakeStore()
	uc := usecase.NewLocationUseCase(store)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateLocationRequest{Code: "A1-01", Name: "Estante A1"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateLocationRequest{Code: "Z-01", Name: "Zona fría", Type: "zone"})
	require.NoError(t, err)

	out, err := uc.List(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "bin", out[0].Type)
	assert.Equal(t, "zone", out[1].Type)
}

// No hay chequeo de unicidad de código: dos ubicaciones con el mismo code conviven.
func TestLocationCreate_CodigoDuplicadoPermitido(t *testing.T) {
	store := newFakeStore()
	uc := usecase.NewLocationUseCase(store)
	ctx := context.Background()

	id1, err := uc.Create(ctx, dto.CreateLocationRequest{Code: "A1-01", Name: "Estante A1"})
	require.NoError(t, err)
	id2, err := uc.Create(ctx, dto.CreateLocationRequest{Code: "A1-01", Name: "Estante A1 bis"})
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
	out, err := uc.List(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

// El filtro por nombre funciona igual que en artículos.
func TestLocationList_FiltroPorNombre(t *testing.T) {
	store := newFakeStore()
	uc := usecase.NewLocationUseCase(store)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateLocationRequest{Code: "R1", Name: "Rack principal"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateLocationRequest{Code: "B1", Name: "Bin pequeño"})
	require.NoError(t, err)

	out, err := uc.List(ctx, "RACK", 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Rack principal", out[0].Name)
}
