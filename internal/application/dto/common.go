package dto

import "github.com/jhoicas/bodega-api/pkg/validator"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Fields  []validator.FieldError `json:"fields,omitempty"`
}

// CreatedResponse respuesta de creación: el identificador generado por el store.
type CreatedResponse struct {
	ID string `json:"id"`
}
