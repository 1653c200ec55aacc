package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	"github.com/jhoicas/bodega-api/pkg/metrics"
)

var _ repository.DocumentStore = (*DocumentStore)(nil)

// DocumentStore implementación del puerto DocumentStore sobre PostgreSQL.
// Los documentos viven en una sola tabla `documents` con el cuerpo en jsonb;
// la colección es una columna discriminadora y el orden de inserción lo da
// una secuencia. Sin restricciones de unicidad sobre el contenido.
type DocumentStore struct {
	pool *pgxpool.Pool
}

// NewDocumentStore construye el adaptador de persistencia de documentos.
func NewDocumentStore(pool *pgxpool.Pool) *DocumentStore {
	return &DocumentStore{pool: pool}
}

// EnsureSchema crea la tabla de documentos si no existe. Idempotente; se
// ejecuta en el arranque.
func (s *DocumentStore) EnsureSchema(ctx context.Context) error {
	// Sentencias separadas: pgx no admite múltiples comandos en un Exec preparado.
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			seq         bigint GENERATED ALWAYS AS IDENTITY,
			id          uuid PRIMARY KEY,
			collection  text NOT NULL,
			doc         jsonb NOT NULL,
			created_at  timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents (collection, seq)`,
	}
	for _, stmt := range ddl {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// InsertOne inserta un documento y devuelve el ID generado (UUID opaco).
func (s *DocumentStore) InsertOne(ctx context.Context, collection string, data map[string]any) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	id := uuid.New().String()
	query := `INSERT INTO documents (id, collection, doc) VALUES ($1, $2, $3)`
	if _, err := s.pool.Exec(ctx, query, id, collection, payload); err != nil {
		return "", fmt.Errorf("insert document (%s): %w", collection, err)
	}
	metrics.DocumentsInserted.WithLabelValues(collection).Inc()
	return id, nil
}

// Find devuelve los documentos de la colección en orden de inserción.
// filter.NameContains aplica ILIKE sobre doc->>'name'. limit <= 0 = sin tope.
func (s *DocumentStore) Find(ctx context.Context, collection string, filter repository.Filter, limit int) ([]repository.Document, error) {
	query := `SELECT id, doc FROM documents WHERE collection = $1`
	args := []any{collection}
	if filter.NameContains != "" {
		query += ` AND doc->>'name' ILIKE '%' || $2 || '%'`
		args = append(args, filter.NameContains)
	}
	query += ` ORDER BY seq`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find documents (%s): %w", collection, err)
	}
	defer rows.Close()

	var docs []repository.Document
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		data := map[string]any{}
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("unmarshal document %s: %w", id, err)
		}
		docs = append(docs, repository.Document{ID: id, Data: data})
	}
	return docs, rows.Err()
}

// Ping verifica la conexión al store.
func (s *DocumentStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// CollectionNames devuelve hasta max nombres de colecciones con documentos.
func (s *DocumentStore) CollectionNames(ctx context.Context, max int) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT DISTINCT collection FROM documents ORDER BY collection LIMIT $1`, max)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan collection name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
