// Package fallback is the single-tenant, file-resident copy of the catalog
// aggregate. It backs the demo mode that runs without a database: the store
// satisfies catalog.Repository for one fixed bakery and seeds itself from
// the hardcoded default catalog.
package fallback

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/brumatteo/caseiros-cardapio-digital/internal/catalog"
)

// soft warning threshold; the write is still attempted past it
const warnBytes = 4 * 1024 * 1024

type Store struct {
	mu   sync.Mutex
	path string
	log  *zap.SugaredLogger
}

func NewStore(path string, log *zap.SugaredLogger) *Store {
	return &Store{path: path, log: log}
}

// storedData mirrors catalog.Data but keeps sections raw so a file written
// before sections existed can be told apart from one with an empty list.
type storedData struct {
	Settings catalog.Settings  `json:"settings"`
	Products []catalog.Product `json:"products"`
	Sections json.RawMessage   `json:"sections"`
	Extras   []catalog.Extra   `json:"extras"`
	Tags     []catalog.Tag     `json:"tags"`
}

// Load returns the stored aggregate when it holds at least one product and
// one section; anything else falls back to the seed catalog. The seed is
// not written to disk here - only an explicit Save persists it.
func (s *Store) Load(_ context.Context, _ string) (catalog.Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warnw("fallback: read failed, seeding defaults", "path", s.path, "err", err)
		}
		return catalog.DefaultData(), nil
	}

	var stored storedData
	if err := json.Unmarshal(raw, &stored); err != nil {
		s.log.Warnw("fallback: corrupt data file, seeding defaults", "path", s.path, "err", err)
		return catalog.DefaultData(), nil
	}

	data := catalog.Data{
		Settings: stored.Settings,
		Products: stored.Products,
		Extras:   stored.Extras,
		Tags:     stored.Tags,
	}
	if len(stored.Sections) > 0 {
		if err := json.Unmarshal(stored.Sections, &data.Sections); err != nil {
			s.log.Warnw("fallback: bad sections blob, re-deriving", "err", err)
		}
	}

	// files written before sections existed get one section with everything
	if data.Sections == nil {
		ids := make([]string, 0, len(data.Products))
		for _, p := range data.Products {
			ids = append(ids, p.ID)
		}
		data.Sections = []catalog.Section{{
			ID:         "section-1",
			Name:       "Nossos Bolos",
			Visible:    true,
			Order:      1,
			ProductIDs: ids,
		}}
	}

	if len(data.Products) == 0 || len(data.Sections) == 0 {
		return catalog.DefaultData(), nil
	}
	return data, nil
}

// Save serializes the aggregate to the data file. Oversized payloads are
// only warned about; a failed write comes back as a plain error, never a
// panic.
func (s *Store) Save(_ context.Context, _ string, data catalog.Data) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if len(raw) > warnBytes {
		s.log.Warnw("fallback: data file is getting large, consider smaller images",
			"bytes", len(raw), "path", s.path)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		s.log.Errorw("fallback: write failed", "path", s.path, "err", err)
		return err
	}
	return nil
}

// Export returns the current aggregate as indented JSON, for backup.
func (s *Store) Export(ctx context.Context) ([]byte, error) {
	data, err := s.Load(ctx, "")
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// Import replaces the stored aggregate with the given JSON document.
func (s *Store) Import(ctx context.Context, raw []byte) error {
	var data catalog.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}
	return s.Save(ctx, "", data)
}
