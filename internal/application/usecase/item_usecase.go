package usecase

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// DefaultListLimit tope de resultados por defecto para listados.
const DefaultListLimit = 50

// ItemUseCase casos de uso para el catálogo de artículos (crear y listar;
// los artículos nunca se actualizan ni se borran).
type ItemUseCase struct {
	store repository.DocumentStore
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(store repository.DocumentStore) *ItemUseCase {
	return &ItemUseCase{store: store}
}

// Create inserta un artículo nuevo y devuelve el ID generado por el store.
// Aplica los valores por defecto: unit "pcs" y min_stock 0. No hay chequeo
// de unicidad de SKU.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (string, error) {
	item := entity.Item{
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Unit:        in.Unit,
		MinStock:    0,
	}
	if item.Unit == "" {
		item.Unit = "pcs"
	}
	if in.MinStock != nil {
		item.MinStock = *in.MinStock
	}
	return uc.store.InsertOne(ctx, repository.CollectionItem, itemDoc(item))
}

// List devuelve artículos con filtro opcional por substring de nombre
// (case-insensitive) y tope de resultados (por defecto 50). El orden es el
// nativo del store (orden de inserción); no hay cursor de paginación.
func (uc *ItemUseCase) List(ctx context.Context, q string, limit int) ([]dto.ItemResponse, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	docs, err := uc.store.Find(ctx, repository.CollectionItem, repository.Filter{NameContains: q}, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toItemResponse(itemFromDocument(d)))
	}
	return out, nil
}

func itemDoc(it entity.Item) map[string]any {
	return map[string]any{
		"sku":         it.SKU,
		"name":        it.Name,
		"description": it.Description,
		"unit":        it.Unit,
		"min_stock":   it.MinStock,
	}
}

func itemFromDocument(d repository.Document) entity.Item {
	return entity.Item{
		ID:          d.ID,
		SKU:         asString(d.Data, "sku"),
		Name:        asString(d.Data, "name"),
		Description: asString(d.Data, "description"),
		Unit:        asString(d.Data, "unit"),
		MinStock:    asInt(d.Data, "min_stock"),
	}
}

func toItemResponse(it entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:          it.ID,
		SKU:         it.SKU,
		Name:        it.Name,
		Description: it.Description,
		Unit:        it.Unit,
		MinStock:    it.MinStock,
	}
}
