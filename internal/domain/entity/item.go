package entity

// Item artículo del catálogo de bodega.
// El SKU se documenta como único pero el sistema no lo exige (sin índice único).
type Item struct {
	ID          string
	SKU         string
	Name        string
	Description string // opcional
	Unit        string // unidad de medida, por defecto "pcs"
	MinStock    int    // nivel mínimo deseado, >= 0
}
