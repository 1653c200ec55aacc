package dto

// DiagnosticsResponse estado del proceso y del almacén de documentos.
// Puramente informativo: el endpoint nunca falla; los estados degradados
// se reportan en el cuerpo.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
