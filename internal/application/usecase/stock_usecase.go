package usecase

import (
	"context"
	"sort"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	"github.com/jhoicas/bodega-api/pkg/metrics"
)

// DefaultStockLimit tope por defecto del reporte de stock.
const DefaultStockLimit = 100

// StockUseCase calcula niveles de stock agregando movimientos en memoria:
// join + reduce en dos pasadas, O(items + movimientos) en tiempo y espacio.
// Cada petición recalcula desde cero sobre la bitácora completa; no hay caché
// ni mantenimiento incremental. Para volúmenes grandes la alternativa es una
// agregación del lado del store agrupada por item_id.
type StockUseCase struct {
	store repository.DocumentStore
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(store repository.DocumentStore) *StockUseCase {
	return &StockUseCase{store: store}
}

// CurrentStock devuelve la cantidad neta por artículo: suma con signo de todos
// sus movimientos. Movimientos que referencian artículos inexistentes se
// acumulan pero no producen fila (referencia colgante). Las filas van ordenadas
// ascendente por nombre y truncadas a limit (por defecto 100). Cualquier error
// de lectura aborta el reporte completo; no hay reporte parcial.
func (uc *StockUseCase) CurrentStock(ctx context.Context, limit int) ([]dto.StockRow, error) {
	if limit <= 0 {
		limit = DefaultStockLimit
	}

	// Pasada 1: catálogo completo de artículos indexado por ID (sin filtro ni tope).
	itemDocs, err := uc.store.Find(ctx, repository.CollectionItem, repository.Filter{}, 0)
	if err != nil {
		return nil, err
	}
	items := make(map[string]entity.Item, len(itemDocs))
	for _, d := range itemDocs {
		items[d.ID] = itemFromDocument(d)
	}

	// Pasada 2: bitácora completa de movimientos, acumulando por item_id.
	// Cantidad ausente o no numérica cuenta como cero.
	movDocs, err := uc.store.Find(ctx, repository.CollectionMovement, repository.Filter{}, 0)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]int)
	for _, mv := range movDocs {
		itemID := asString(mv.Data, "item_id")
		totals[itemID] += asInt(mv.Data, "quantity")
	}

	levels := make([]entity.StockLevel, 0, len(totals))
	for itemID, qty := range totals {
		item, ok := items[itemID]
		if !ok {
			continue // referencia colgante: se descarta en silencio
		}
		levels = append(levels, entity.StockLevel{
			ItemID:   itemID,
			SKU:      item.SKU,
			Name:     item.Name,
			Quantity: qty,
		})
	}

	sort.SliceStable(levels, func(i, j int) bool { return levels[i].Name < levels[j].Name })
	if len(levels) > limit {
		levels = levels[:limit]
	}

	rows := make([]dto.StockRow, 0, len(levels))
	for _, l := range levels {
		rows = append(rows, dto.StockRow{ItemID: l.ItemID, SKU: l.SKU, Name: l.Name, Quantity: l.Quantity})
	}

	metrics.StockReports.Inc()
	return rows, nil
}
