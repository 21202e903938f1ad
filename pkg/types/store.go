package types

import "time"

// Store is the staging backend for validated tabular rows. Callers attach
// to a backend, access datasets by table-schema name, and detach when done.
type Store interface {
	// GetDataset returns the Dataset for the given table-schema name.
	// Returns ErrDatasetNotFound if the name is not a known schema.
	GetDataset(name string) (Dataset, error)

	// Attach connects the store to the backend described by config.
	// Creates the DataDir if it does not exist.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, dataset operations return ErrStoreDetached.
	Detach() error
}

// Dataset holds the staged rows of one tabular schema.
// Rows are positional: values follow the schema's column order, with nil
// marking a NULL in a nullable column.
type Dataset interface {
	// Insert stages a batch of validated rows under a new staging run.
	// The source label records where the rows came from (usually a file
	// path). Returns the staging run ID.
	Insert(source string, rows [][]any) (string, error)

	// Count returns the number of staged rows across all runs.
	Count() (int64, error)

	// Runs returns the staging runs recorded for this dataset, newest
	// first.
	Runs() ([]StagingRun, error)
}

// StagingRun is one ledger entry: a single Insert batch into a dataset.
type StagingRun struct {
	StagingID string    // UUID v7, generated on insert.
	TableName string    // Tabular schema the rows conform to.
	Source    string    // Caller-supplied provenance label.
	RowCount  int64     // Rows staged in this run.
	CreatedAt time.Time // Timestamp of the run.
}
