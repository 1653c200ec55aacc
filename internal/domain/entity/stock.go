package entity

// StockLevel fila del reporte de stock: suma neta de los movimientos de un
// artículo, calculada bajo demanda.
type StockLevel struct {
	ItemID   string
	SKU      string
	Name     string
	Quantity int
}
