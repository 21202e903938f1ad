package mapping

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadIntercellSample(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "intercell.yaml"))
	require.NoError(t, err)

	subject := doc.Row.Map
	assert.Equal(t, KindSubject, subject.Kind())
	assert.Equal(t, "biological_entity", subject.NodeType())
	assert.Equal(t, "uniprot", subject.Column)

	assert.Equal(t, []string{"located_in", "subclass_of"}, doc.Relations())

	props := doc.Properties()
	require.Len(t, props, 4)
	for _, p := range props {
		assert.True(t, doc.DeclaredTypes()[p.ForObject],
			"property %q attaches to undeclared %q", p.ToProperty, p.ForObject)
	}
}

func TestRuleKind(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		want string
	}{
		{
			name: "subject rule",
			rule: Rule{Column: "uniprot", ToSubject: "protein"},
			want: KindSubject,
		},
		{
			name: "object rule",
			rule: Rule{Column: "target", ToObject: "protein", ViaRelation: "interacts_with"},
			want: KindObject,
		},
		{
			name: "property rule",
			rule: Rule{Column: "genesymbol", ToProperty: "genesymbol", ForObject: "protein"},
			want: KindProperty,
		},
		{
			name: "no target is invalid",
			rule: Rule{Column: "uniprot"},
			want: KindInvalid,
		},
		{
			name: "two targets is invalid",
			rule: Rule{Column: "uniprot", ToSubject: "protein", ToProperty: "uniprot_id"},
			want: KindInvalid,
		},
		{
			name: "subject and object together is invalid",
			rule: Rule{Column: "uniprot", ToSubject: "protein", ToObject: "gene"},
			want: KindInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Kind())
		})
	}
}

func TestRuleNodeType(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		want string
	}{
		{
			name: "subject without final_type uses to_subject",
			rule: Rule{Column: "uniprot", ToSubject: "protein"},
			want: "protein",
		},
		{
			name: "final_type overrides to_subject",
			rule: Rule{Column: "uniprot", ToSubject: "protein", FinalType: "enzyme"},
			want: "enzyme",
		},
		{
			name: "final_type overrides to_object",
			rule: Rule{Column: "parent", ToObject: "entity", FinalType: "biological_entity"},
			want: "biological_entity",
		},
		{
			name: "property rule has no node type",
			rule: Rule{Column: "scope", ToProperty: "scope", ForObject: "located_in"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.NodeType())
		})
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "intercell.yaml"))
	require.NoError(t, err)

	data, err := doc.Marshal()
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)

	// Transformer order is significant and must survive serialization.
	assert.Equal(t, doc, again)
}

func TestDeclaredTypes(t *testing.T) {
	doc := &Document{
		Row: RowRule{Map: Rule{Column: "uniprot", ToSubject: "protein"}},
		Transformers: []Transformer{
			{Map: Rule{Column: "target", ToObject: "protein", ViaRelation: "interacts_with"}},
			{Map: Rule{Column: "class", ToObject: "annotation", FinalType: "functional_class"}},
		},
	}

	declared := doc.DeclaredTypes()
	assert.True(t, declared["protein"])
	assert.True(t, declared["interacts_with"])
	assert.True(t, declared["functional_class"])
	assert.False(t, declared["annotation"], "final_type replaces the raw to_object name")
}
