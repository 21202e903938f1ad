package sqlite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecarrenolozano/omnipath-secondary-adapter/pkg/tabular"
	"github.com/ecarrenolozano/omnipath-secondary-adapter/pkg/types"
)

func TestSQLiteType(t *testing.T) {
	assert.Equal(t, "TEXT", sqliteType(types.TypeStr))
	assert.Equal(t, "INTEGER", sqliteType(types.TypeInt))
	assert.Equal(t, "INTEGER", sqliteType(types.TypeBool))
	assert.Equal(t, "REAL", sqliteType(types.TypeFloat))
}

func TestCreateTableSQLQuotesKeywordColumns(t *testing.T) {
	// "references", "type", and "source" are SQL keywords or
	// near-keywords; the generated DDL must quote every identifier.
	schema, err := tabular.Builtin(tabular.TableNetworks)
	require.NoError(t, err)

	ddl := createTableSQL(schema)
	assert.Contains(t, ddl, `"references" TEXT,`)
	assert.Contains(t, ddl, `"type" TEXT NOT NULL,`)
	assert.Contains(t, ddl, `"source" TEXT,`)
	assert.Contains(t, ddl, `"curation_effort" INTEGER NOT NULL,`)
	assert.Contains(t, ddl, "row_id TEXT PRIMARY KEY")
}

func TestCreateTableSQLNullability(t *testing.T) {
	schema, err := tabular.Builtin(tabular.TableEnzymePTM)
	require.NoError(t, err)

	ddl := createTableSQL(schema)
	assert.Contains(t, ddl, `"references" TEXT,`, "nullable column carries no constraint")
	assert.Contains(t, ddl, `"enzyme" TEXT NOT NULL,`)
}

func TestInsertRowSQL(t *testing.T) {
	schema, err := tabular.Builtin(tabular.TableAnnotations)
	require.NoError(t, err)

	stmt := insertRowSQL(schema)
	assert.True(t, strings.HasPrefix(stmt, `INSERT INTO "annotations" (row_id, staging_id, `))
	// 7 data columns plus row_id and staging_id.
	assert.Equal(t, 9, strings.Count(stmt, "?"))
}
