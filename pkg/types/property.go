package types

// PropertyType names a primitive value type a schema property or table
// column may declare.
type PropertyType string

// Primitive property types accepted in ontology and tabular schemas.
const (
	TypeStr   PropertyType = "str"
	TypeInt   PropertyType = "int"
	TypeFloat PropertyType = "float"
	TypeBool  PropertyType = "bool"
)

// validPropertyTypes is the set of recognized primitive types.
var validPropertyTypes = map[PropertyType]bool{
	TypeStr:   true,
	TypeInt:   true,
	TypeFloat: true,
	TypeBool:  true,
}

// IsValidPropertyType reports whether pt is a recognized primitive type.
func IsValidPropertyType(pt PropertyType) bool {
	return validPropertyTypes[pt]
}

// Representation names how an ontology entity materializes in the target
// graph.
type Representation string

// Supported entity representations.
const (
	RepresentedNode Representation = "node"
	RepresentedEdge Representation = "edge"
)

// validRepresentations is the set of recognized representations.
var validRepresentations = map[Representation]bool{
	RepresentedNode: true,
	RepresentedEdge: true,
}

// IsValidRepresentation reports whether r is node or edge.
func IsValidRepresentation(r Representation) bool {
	return validRepresentations[r]
}
