package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ecarrenolozano/omnipath-secondary-adapter/pkg/tabular"
	"github.com/ecarrenolozano/omnipath-secondary-adapter/pkg/types"
)

// dataset implements types.Dataset for one staging table.
type dataset struct {
	schema  tabular.TableSchema
	backend *Backend
}

// newUUID generates a UUID v7 string.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Insert stages one batch of validated rows under a new staging run.
// The batch is transactional: either the ledger entry and every row
// land, or nothing does. Row values must be positional in schema column
// order, as produced by the tabular reader.
func (d *dataset) Insert(source string, rows [][]any) (string, error) {
	d.backend.mu.Lock()
	defer d.backend.mu.Unlock()

	if !d.backend.attached {
		return "", types.ErrStoreDetached
	}

	stagingID := newUUID()
	createdAt := time.Now().UTC().Format(time.RFC3339Nano)

	tx, err := d.backend.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin staging transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO stagings (staging_id, table_name, source, row_count, created_at) VALUES (?, ?, ?, ?, ?)`,
		stagingID, d.schema.Name, source, int64(len(rows)), createdAt,
	); err != nil {
		return "", fmt.Errorf("record staging run: %w", err)
	}

	stmt, err := tx.Prepare(insertRowSQL(d.schema))
	if err != nil {
		return "", fmt.Errorf("prepare row insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		if len(row) != len(d.schema.Columns) {
			return "", fmt.Errorf("row %d: got %d values, want %d: %w",
				i, len(row), len(d.schema.Columns), types.ErrRowWidth)
		}
		args := make([]any, 0, len(row)+2)
		args = append(args, newUUID(), stagingID)
		for _, v := range row {
			args = append(args, storageValue(v))
		}
		if _, err := stmt.Exec(args...); err != nil {
			return "", fmt.Errorf("stage row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit staging transaction: %w", err)
	}
	return stagingID, nil
}

// storageValue converts a record value to its SQLite storage form.
// Booleans become 0/1 integers; everything else passes through.
func storageValue(v any) any {
	if b, ok := v.(bool); ok {
		if b {
			return int64(1)
		}
		return int64(0)
	}
	return v
}

// Count returns the number of staged rows across all runs.
func (d *dataset) Count() (int64, error) {
	d.backend.mu.RLock()
	defer d.backend.mu.RUnlock()

	if !d.backend.attached {
		return 0, types.ErrStoreDetached
	}

	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteIdent(d.schema.Name))
	if err := d.backend.db.QueryRow(query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count staged rows: %w", err)
	}
	return count, nil
}

// Runs returns the staging runs recorded for this dataset, newest first.
func (d *dataset) Runs() ([]types.StagingRun, error) {
	d.backend.mu.RLock()
	defer d.backend.mu.RUnlock()

	if !d.backend.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := d.backend.db.Query(
		`SELECT staging_id, table_name, source, row_count, created_at
		 FROM stagings WHERE table_name = ? ORDER BY created_at DESC`,
		d.schema.Name,
	)
	if err != nil {
		return nil, fmt.Errorf("query staging runs: %w", err)
	}
	defer rows.Close()

	runs := make([]types.StagingRun, 0)
	for rows.Next() {
		var run types.StagingRun
		var createdAt string
		if err := rows.Scan(&run.StagingID, &run.TableName, &run.Source, &run.RowCount, &createdAt); err != nil {
			return nil, fmt.Errorf("scan staging run: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse staging timestamp: %w", err)
		}
		run.CreatedAt = t
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate staging runs: %w", err)
	}
	return runs, nil
}
