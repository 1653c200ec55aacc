package usecase

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// MovementUseCase registro de movimientos de inventario. La bitácora es
// append-only: el único cambio de estado del sistema es acumular movimientos.
type MovementUseCase struct {
	store repository.DocumentStore
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(store repository.DocumentStore) *MovementUseCase {
	return &MovementUseCase{store: store}
}

// Create inserta un movimiento. item_id y location_id no se validan contra
// registros existentes; las referencias colgantes se toleran en el agregador.
func (uc *MovementUseCase) Create(ctx context.Context, in dto.CreateMovementRequest) (string, error) {
	mv := entity.Movement{
		ItemID:     in.ItemID,
		LocationID: in.LocationID,
		Reference:  in.Reference,
		Note:       in.Note,
	}
	if in.Quantity != nil {
		mv.Quantity = *in.Quantity
	}
	return uc.store.InsertOne(ctx, repository.CollectionMovement, movementDoc(mv))
}

func movementDoc(mv entity.Movement) map[string]any {
	return map[string]any{
		"item_id":     mv.ItemID,
		"location_id": mv.LocationID,
		"quantity":    mv.Quantity,
		"reference":   mv.Reference,
		"note":        mv.Note,
	}
}
