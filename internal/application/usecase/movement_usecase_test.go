package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/usecase"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// Registrar un movimiento persiste la cantidad con signo y devuelve ID no vacío.
func TestMovementCreate_Persiste(t *testing.T) {
	store := newFakeStore()
	uc := usecase.NewMovementUseCase(store)
	ctx := context.Background()

	id, err := uc.Create(ctx, dto.CreateMovementRequest{
		ItemID: "item-1", LocationID: "loc-1", Quantity: intPtr(-5), Reference: "SO-99",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	docs, err := store.Find(ctx, repository.CollectionMovement, repository.Filter{}, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "item-1", docs[0].Data["item_id"])
	assert.Equal(t, "loc-1", docs[0].Data["location_id"])
	assert.Equal(t, float64(-5), docs[0].Data["quantity"], "jsonb devuelve números como float64")
	assert.Equal(t, "SO-99", docs[0].Data["reference"])
}

// Las referencias no se validan: un movimiento hacia un artículo inexistente
// se inserta sin error (la tolerancia a colgantes vive en el agregador).
func TestMovementCreate_SinValidacionDeReferencias(t *testing.T) {
	store := newFakeStore()
	uc := usecase.NewMovementUseCase(store)

	id, err := uc.Create(context.Background(), dto.CreateMovementRequest{
		ItemID: "no-existe", LocationID: "tampoco", Quantity: intPtr(5),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}
