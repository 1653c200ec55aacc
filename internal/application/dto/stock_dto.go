package dto

// StockRow fila del reporte de stock: cantidad neta por artículo.
type StockRow struct {
	ItemID   string `json:"item_id"`
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
