package dto

// CreateMovementRequest entrada para registrar un movimiento.
// Quantity es puntero para distinguir "ausente" de cero y admitir negativos
// (positivo = entrada, negativo = salida). Las referencias no se validan
// contra registros existentes.
type CreateMovementRequest struct {
	ItemID     string `json:"item_id" validate:"required"`
	LocationID string `json:"location_id" validate:"required"`
	Quantity   *int   `json:"quantity" validate:"required"`
	Reference  string `json:"reference"`
	Note       string `json:"note"`
}
