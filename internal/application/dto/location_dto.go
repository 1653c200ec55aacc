package dto

// CreateLocationRequest entrada para crear una ubicación.
// Type es una etiqueta libre (bin, rack, zone); "bin" por defecto.
type CreateLocationRequest struct {
	Code string `json:"code" validate:"required"`
	Name string `json:"name" validate:"required"`
	Type string `json:"type"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
	Type string `json:"type"`
}
