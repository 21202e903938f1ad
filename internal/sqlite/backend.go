// Package sqlite implements the SQLite staging store for validated
// Omnipath table rows. Each built-in tabular schema gets one staging
// table; a stagings ledger records every Insert batch.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/ecarrenolozano/omnipath-secondary-adapter/pkg/tabular"
	"github.com/ecarrenolozano/omnipath-secondary-adapter/pkg/types"
)

// DBFileName is the staging database file created under DataDir.
const DBFileName = "staging.db"

// Backend implements types.Store over a local SQLite database.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	datasets map[string]*dataset
}

// NewBackend creates a new staging backend. The backend is not attached;
// call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{
		datasets: make(map[string]*dataset),
	}
}

// Attach initializes the backend: creates DataDir if missing, opens the
// staging database, and creates the ledger plus one staging table per
// built-in tabular schema when they do not exist yet. Staged rows
// accumulate across attaches until the database file is removed.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, DBFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open staging database: %w", err)
	}

	if _, err := db.Exec(createStagings); err != nil {
		db.Close()
		return fmt.Errorf("create stagings ledger: %w", err)
	}
	for _, name := range tabular.BuiltinNames() {
		schema, err := tabular.Builtin(name)
		if err != nil {
			db.Close()
			return err
		}
		if _, err := db.Exec(createTableSQL(schema)); err != nil {
			db.Close()
			return fmt.Errorf("create staging table %s: %w", name, err)
		}
		b.datasets[name] = &dataset{schema: schema, backend: b}
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the database and releases resources. Idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	b.datasets = make(map[string]*dataset)
	b.attached = false
	if err != nil {
		return fmt.Errorf("close staging database: %w", err)
	}
	return nil
}

// GetDataset returns the dataset for the named tabular schema.
// Returns ErrStoreDetached if the backend is not attached and
// ErrDatasetNotFound if the name is not a built-in schema.
func (b *Backend) GetDataset(name string) (types.Dataset, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	d, ok := b.datasets[name]
	if !ok {
		return nil, types.ErrDatasetNotFound
	}
	return d, nil
}
