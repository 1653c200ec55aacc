package usecase

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// LocationUseCase casos de uso para ubicaciones (crear y listar).
type LocationUseCase struct {
	store repository.DocumentStore
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(store repository.DocumentStore) *LocationUseCase {
	return &LocationUseCase{store: store}
}

// Create inserta una ubicación nueva. Type por defecto "bin"; sin chequeo de
// unicidad del código.
func (uc *LocationUseCase) Create(ctx context.Context, in dto.CreateLocationRequest) (string, error) {
	loc := entity.Location{
		Code: in.Code,
		Name: in.Name,
		Type: in.Type,
	}
	if loc.Type == "" {
		loc.Type = "bin"
	}
	return uc.store.InsertOne(ctx, repository.CollectionLocation, locationDoc(loc))
}

// List devuelve ubicaciones con el mismo contrato de filtro y tope que los artículos.
func (uc *LocationUseCase) List(ctx context.Context, q string, limit int) ([]dto.LocationResponse, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	docs, err := uc.store.Find(ctx, repository.CollectionLocation, repository.Filter{NameContains: q}, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(docs))
	for _, d := range docs {
		loc := locationFromDocument(d)
		out = append(out, dto.LocationResponse{ID: loc.ID, Code: loc.Code, Name: loc.Name, Type: loc.Type})
	}
	return out, nil
}

func locationDoc(loc entity.Location) map[string]any {
	return map[string]any{
		"code": loc.Code,
		"name": loc.Name,
		"type": loc.Type,
	}
}

func locationFromDocument(d repository.Document) entity.Location {
	return entity.Location{
		ID:   d.ID,
		Code: asString(d.Data, "code"),
		Name: asString(d.Data, "name"),
		Type: asString(d.Data, "type"),
	}
}
