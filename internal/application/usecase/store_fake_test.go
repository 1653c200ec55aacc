package usecase_test

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// fakeStore: DocumentStore en memoria para los tests de casos de uso.
// Normaliza los documentos con un round-trip JSON para reproducir lo que
// devuelve jsonb (números como float64).
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	mu      sync.Mutex
	seq     int
	docs    map[string][]repository.Document
	findErr map[string]error // error por colección para simular fallas de lectura
	pingErr error
}

var _ repository.DocumentStore = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		docs:    make(map[string][]repository.Document),
		findErr: make(map[string]error),
	}
}

func (s *fakeStore) InsertOne(_ context.Context, collection string, data map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	id := fmt.Sprintf("%08d-0000-0000-0000-000000000000", s.seq)

	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	normalized := map[string]any{}
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return "", err
	}
	s.docs[collection] = append(s.docs[collection], repository.Document{ID: id, Data: normalized})
	return id, nil
}

func (s *fakeStore) Find(_ context.Context, collection string, filter repository.Filter, limit int) ([]repository.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.findErr[collection]; err != nil {
		return nil, err
	}
	var out []repository.Document
	for _, d := range s.docs[collection] {
		if filter.NameContains != "" {
			name, _ := d.Data["name"].(string)
			if !strings.Contains(strings.ToLower(name), strings.ToLower(filter.NameContains)) {
				continue
			}
		}
		out = append(out, d)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *fakeStore) Ping(context.Context) error { return s.pingErr }

func (s *fakeStore) CollectionNames(_ context.Context, max int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var names []string
	for name := range s.docs {
		names = append(names, name)
	}
	if len(names) > max {
		names = names[:max]
	}
	return names, nil
}

// seedDoc inserta un documento directo en el fake sin pasar por el caso de uso.
func (s *fakeStore) seedDoc(collection string, data map[string]any) string {
	id, err := s.InsertOne(context.Background(), collection, data)
	if err != nil {
		panic(err)
	}
	return id
}
