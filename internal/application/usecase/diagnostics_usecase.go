package usecase

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// maxDiagnosticsCollections tope de nombres de colecciones en el diagnóstico.
const maxDiagnosticsCollections = 10

// DiagnosticsUseCase reporta vitalidad del proceso, alcance del store y
// presencia (no el valor) de la configuración de conexión.
type DiagnosticsUseCase struct {
	store       repository.DocumentStore
	urlPresent  bool
	namePresent bool
}

// NewDiagnosticsUseCase construye el caso de uso. urlPresent/namePresent
// indican si DATABASE_URL y DB_NAME están definidos en la configuración.
func NewDiagnosticsUseCase(store repository.DocumentStore, urlPresent, namePresent bool) *DiagnosticsUseCase {
	return &DiagnosticsUseCase{store: store, urlPresent: urlPresent, namePresent: namePresent}
}

// Check nunca devuelve error: los estados degradados van en el cuerpo.
func (uc *DiagnosticsUseCase) Check(ctx context.Context) dto.DiagnosticsResponse {
	out := dto.DiagnosticsResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      presence(uc.urlPresent),
		DatabaseName:     presence(uc.namePresent),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if uc.store == nil {
		return out
	}
	if err := uc.store.Ping(ctx); err != nil {
		out.Database = "error: " + truncate(err.Error(), 50)
		return out
	}
	out.Database = "available"
	out.ConnectionStatus = "connected"

	names, err := uc.store.CollectionNames(ctx, maxDiagnosticsCollections)
	if err != nil {
		out.Database = "connected but error: " + truncate(err.Error(), 50)
		return out
	}
	if names != nil {
		out.Collections = names
	}
	out.Database = "connected and working"
	return out
}

func presence(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
