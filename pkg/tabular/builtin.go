package tabular

import (
	"sort"

	"github.com/ecarrenolozano/omnipath-secondary-adapter/pkg/types"
)

// Built-in Omnipath table schema names.
const (
	TableNetworks    = "networks"
	TableEnzymePTM   = "enzyme_ptm"
	TableIntercell   = "intercell"
	TableComplexes   = "complexes"
	TableAnnotations = "annotations"
)

// col is shorthand for building the built-in column lists.
func col(name string, pt types.PropertyType, nullable bool) ColumnSpec {
	return ColumnSpec{Name: name, Type: pt, Nullable: nullable}
}

// builtinSchemas holds the column sets of the Omnipath download tables.
// Names, types, and nullability follow the upstream table definitions.
var builtinSchemas = map[string]TableSchema{
	TableNetworks: {
		Name: TableNetworks,
		Columns: []ColumnSpec{
			col("source", types.TypeStr, true),
			col("target", types.TypeStr, true),
			col("source_genesymbol", types.TypeStr, false),
			col("target_genesymbol", types.TypeStr, false),
			col("is_directed", types.TypeBool, false),
			col("is_stimulation", types.TypeBool, false),
			col("is_inhibition", types.TypeBool, false),
			col("consensus_direction", types.TypeBool, false),
			col("consensus_stimulation", types.TypeBool, false),
			col("consensus_inhibition", types.TypeBool, false),
			col("sources", types.TypeStr, false),
			col("references", types.TypeStr, true),
			col("omnipath", types.TypeBool, false),
			col("kinaseextra", types.TypeBool, false),
			col("ligrecextra", types.TypeBool, false),
			col("pathwayextra", types.TypeBool, false),
			col("mirnatarget", types.TypeBool, false),
			col("dorothea", types.TypeBool, false),
			col("collectri", types.TypeBool, false),
			col("tf_target", types.TypeBool, true),
			col("lncrna_mrna", types.TypeBool, false),
			col("tf_mirna", types.TypeBool, false),
			col("small_molecule", types.TypeBool, false),
			col("dorothea_curated", types.TypeBool, true),
			col("dorothea_chipseq", types.TypeBool, true),
			col("dorothea_tfbs", types.TypeBool, true),
			col("dorothea_coexp", types.TypeBool, true),
			col("dorothea_level", types.TypeStr, true),
			col("type", types.TypeStr, false),
			col("curation_effort", types.TypeInt, false),
			col("extra_attrs", types.TypeStr, true),
			col("evidences", types.TypeStr, true),
			col("ncbi_tax_id_source", types.TypeInt, false),
			col("entity_type_source", types.TypeStr, false),
			col("ncbi_tax_id_target", types.TypeInt, false),
			col("entity_type_target", types.TypeStr, false),
		},
	},
	TableEnzymePTM: {
		Name: TableEnzymePTM,
		Columns: []ColumnSpec{
			col("enzyme", types.TypeStr, false),
			col("enzyme_genesymbol", types.TypeStr, false),
			col("substrate", types.TypeStr, false),
			col("substrate_genesymbol", types.TypeStr, false),
			col("isoforms", types.TypeStr, false),
			col("residue_type", types.TypeStr, false),
			col("residue_offset", types.TypeInt, false),
			col("modification", types.TypeStr, false),
			col("sources", types.TypeStr, false),
			col("references", types.TypeStr, true),
			col("curation_effort", types.TypeInt, false),
			col("ncbi_tax_id", types.TypeInt, false),
		},
	},
	TableIntercell: {
		Name: TableIntercell,
		Columns: []ColumnSpec{
			col("category", types.TypeStr, false),
			col("parent", types.TypeStr, false),
			col("database", types.TypeStr, false),
			col("scope", types.TypeStr, false),
			col("aspect", types.TypeStr, false),
			col("source", types.TypeStr, false),
			col("uniprot", types.TypeStr, false),
			col("genesymbol", types.TypeStr, false),
			col("entity_type", types.TypeStr, false),
			col("consensus_score", types.TypeInt, false),
			col("transmitter", types.TypeBool, false),
			col("receiver", types.TypeBool, false),
			col("secreted", types.TypeBool, false),
			col("plasma_membrane_transmembrane", types.TypeBool, false),
			col("plasma_membrane_peripheral", types.TypeBool, false),
		},
	},
	TableComplexes: {
		Name: TableComplexes,
		Columns: []ColumnSpec{
			col("name", types.TypeStr, false),
			col("components", types.TypeStr, false),
			col("components_genesymbols", types.TypeStr, false),
			col("stoichiometry", types.TypeStr, false),
			col("sources", types.TypeStr, false),
			col("references", types.TypeStr, false),
			col("identifiers", types.TypeStr, false),
		},
	},
	TableAnnotations: {
		Name: TableAnnotations,
		Columns: []ColumnSpec{
			col("uniprot", types.TypeStr, false),
			col("genesymbol", types.TypeStr, false),
			col("entity_type", types.TypeStr, false),
			col("source", types.TypeStr, false),
			col("label", types.TypeStr, false),
			col("value", types.TypeStr, false),
			col("record_id", types.TypeInt, false),
		},
	},
}

// Builtin returns the built-in schema with the given name.
// Returns ErrSchemaUnknown for any other name.
func Builtin(name string) (TableSchema, error) {
	s, ok := builtinSchemas[name]
	if !ok {
		return TableSchema{}, types.ErrSchemaUnknown
	}
	return s, nil
}

// BuiltinNames returns the built-in schema names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinSchemas))
	for name := range builtinSchemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
