package repository

import "context"

// Colecciones del almacén de documentos.
const (
	CollectionItem     = "item"
	CollectionLocation = "location"
	CollectionMovement = "movement"
)

// Document registro genérico del almacén: identificador opaco generado por el
// store más el cuerpo del documento. No asumir forma numérica ni estructurada
// del ID.
type Document struct {
	ID   string
	Data map[string]any
}

// Filter filtro de consulta. El valor cero no filtra nada.
type Filter struct {
	// NameContains substring case-insensitive sobre el campo "name" del documento.
	NameContains string
}

// DocumentStore define el puerto de persistencia (DIP): un almacén de
// documentos sin esquema con dos primitivas (insertar uno, buscar varios)
// más introspección para diagnóstico.
type DocumentStore interface {
	// InsertOne inserta un documento inmutable y devuelve su ID generado.
	InsertOne(ctx context.Context, collection string, data map[string]any) (string, error)
	// Find devuelve documentos en orden de inserción. limit <= 0 = sin tope.
	Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error)
	// Ping verifica que el store es alcanzable.
	Ping(ctx context.Context) error
	// CollectionNames devuelve hasta max nombres de colecciones existentes.
	CollectionNames(ctx context.Context, max int) ([]string, error)
}
