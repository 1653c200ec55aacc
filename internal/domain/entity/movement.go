package entity

// Movement movimiento de inventario inmutable: cantidad positiva = entrada,
// negativa = salida. Las referencias a Item/Location no se validan contra
// registros existentes; el agregador tolera referencias colgantes.
type Movement struct {
	ID         string
	ItemID     string
	LocationID string
	Quantity   int
	Reference  string // opcional, ej. orden de compra/venta
	Note       string // opcional
}
