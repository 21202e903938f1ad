package sqlite

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecarrenolozano/omnipath-secondary-adapter/pkg/tabular"
	"github.com/ecarrenolozano/omnipath-secondary-adapter/pkg/types"
)

// annotationRows returns well-formed positional rows for the annotations
// schema.
func annotationRows() [][]any {
	return [][]any{
		{"P00533", "EGFR", "protein", "CellPhoneDB", "receptor", "true", int64(1)},
		{"P01133", "EGF", "protein", "CellPhoneDB", "secreted", "true", int64(2)},
	}
}

func TestInsertRecordsRun(t *testing.T) {
	b := attachTestBackend(t)
	d, err := b.GetDataset(tabular.TableAnnotations)
	require.NoError(t, err)

	stagingID, err := d.Insert("omnipath/annotations.tsv", annotationRows())
	require.NoError(t, err)

	_, err = uuid.Parse(stagingID)
	assert.NoError(t, err, "staging ID is a UUID")

	count, err := d.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	runs, err := d.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, stagingID, runs[0].StagingID)
	assert.Equal(t, tabular.TableAnnotations, runs[0].TableName)
	assert.Equal(t, "omnipath/annotations.tsv", runs[0].Source)
	assert.Equal(t, int64(2), runs[0].RowCount)
	assert.False(t, runs[0].CreatedAt.IsZero())
}

func TestInsertAccumulatesRuns(t *testing.T) {
	b := attachTestBackend(t)
	d, err := b.GetDataset(tabular.TableAnnotations)
	require.NoError(t, err)

	first, err := d.Insert("first.tsv", annotationRows())
	require.NoError(t, err)
	second, err := d.Insert("second.tsv", annotationRows()[:1])
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	count, err := d.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	runs, err := d.Runs()
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestInsertStagesNulls(t *testing.T) {
	b := attachTestBackend(t)
	d, err := b.GetDataset(tabular.TableEnzymePTM)
	require.NoError(t, err)

	// references is nullable; nil must stage as NULL.
	row := []any{"P00533", "EGFR", "P06239", "LCK", "1", "Y", int64(394), "phosphorylation",
		"SIGNOR", nil, int64(4), int64(9606)}
	_, err = d.Insert("enz_sub.tsv", [][]any{row})
	require.NoError(t, err)

	var refs any
	var offset int64
	err = b.db.QueryRow(`SELECT "references", "residue_offset" FROM "enzyme_ptm"`).Scan(&refs, &offset)
	require.NoError(t, err)
	assert.Nil(t, refs)
	assert.Equal(t, int64(394), offset)
}

func TestInsertStagesBoolsAsIntegers(t *testing.T) {
	b := attachTestBackend(t)
	d, err := b.GetDataset(tabular.TableIntercell)
	require.NoError(t, err)

	row := []any{"receptor", "receptor", "CellPhoneDB", "specific", "functional",
		"composite", "P00533", "EGFR", "protein", int64(11),
		false, true, false, true, false}
	_, err = d.Insert("intercell.tsv", [][]any{row})
	require.NoError(t, err)

	var transmitter, receiver int64
	err = b.db.QueryRow(`SELECT "transmitter", "receiver" FROM "intercell"`).Scan(&transmitter, &receiver)
	require.NoError(t, err)
	assert.Equal(t, int64(0), transmitter)
	assert.Equal(t, int64(1), receiver)
}

func TestInsertRejectsWrongWidth(t *testing.T) {
	b := attachTestBackend(t)
	d, err := b.GetDataset(tabular.TableAnnotations)
	require.NoError(t, err)

	_, err = d.Insert("short.tsv", [][]any{{"P00533", "EGFR"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrRowWidth)

	// The failed batch must not leave partial state behind.
	count, err := d.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	runs, err := d.Runs()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestDatasetAfterDetach(t *testing.T) {
	b := attachTestBackend(t)
	d, err := b.GetDataset(tabular.TableAnnotations)
	require.NoError(t, err)
	require.NoError(t, b.Detach())

	_, err = d.Insert("late.tsv", annotationRows())
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	_, err = d.Count()
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	_, err = d.Runs()
	assert.ErrorIs(t, err, types.ErrStoreDetached)
}
