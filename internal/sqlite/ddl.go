package sqlite

import (
	"fmt"
	"strings"

	"github.com/ecarrenolozano/omnipath-secondary-adapter/pkg/tabular"
	"github.com/ecarrenolozano/omnipath-secondary-adapter/pkg/types"
)

// createStagings is the ledger of staging runs, one row per Insert batch.
const createStagings = `CREATE TABLE IF NOT EXISTS stagings (
    staging_id TEXT PRIMARY KEY,
    table_name TEXT NOT NULL,
    source TEXT NOT NULL,
    row_count INTEGER NOT NULL,
    created_at TEXT NOT NULL
);`

// sqliteType maps a primitive column type to its SQLite storage class.
// Booleans are stored as 0/1 integers.
func sqliteType(pt types.PropertyType) string {
	switch pt {
	case types.TypeInt, types.TypeBool:
		return "INTEGER"
	case types.TypeFloat:
		return "REAL"
	default:
		return "TEXT"
	}
}

// quoteIdent double-quotes an identifier. Several Omnipath column names
// ("references", "type", "source") collide with SQL keywords.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// createTableSQL builds the DDL for one staging table: a generated row
// ID, the owning staging run, and the schema's columns at their mapped
// storage classes. Nullability follows the column spec.
func createTableSQL(schema tabular.TableSchema) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", quoteIdent(schema.Name))
	b.WriteString("    row_id TEXT PRIMARY KEY,\n")
	b.WriteString("    staging_id TEXT NOT NULL,\n")
	for _, c := range schema.Columns {
		fmt.Fprintf(&b, "    %s %s", quoteIdent(c.Name), sqliteType(c.Type))
		if !c.Nullable {
			b.WriteString(" NOT NULL")
		}
		b.WriteString(",\n")
	}
	b.WriteString("    FOREIGN KEY (staging_id) REFERENCES stagings(staging_id)\n);")
	return b.String()
}

// insertRowSQL builds the positional INSERT statement matching
// createTableSQL's column order.
func insertRowSQL(schema tabular.TableSchema) string {
	cols := make([]string, 0, len(schema.Columns)+2)
	cols = append(cols, "row_id", "staging_id")
	for _, c := range schema.Columns {
		cols = append(cols, quoteIdent(c.Name))
	}
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(schema.Name), strings.Join(cols, ", "), marks)
}
