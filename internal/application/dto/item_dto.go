package dto

// CreateItemRequest entrada para crear un artículo del catálogo.
// Unit y MinStock son opcionales: "pcs" y 0 por defecto.
type CreateItemRequest struct {
	SKU         string `json:"sku" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
	MinStock    *int   `json:"min_stock" validate:"omitempty,gte=0"`
}

// ItemResponse salida de un artículo con su ID en forma de string.
type ItemResponse struct {
	ID          string `json:"id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Unit        string `json:"unit"`
	MinStock    int    `json:"min_stock"`
}
