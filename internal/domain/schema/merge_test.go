package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestDecode_DropsClientID(t *testing.T) {
	doc, err := Decode[sample]([]byte(`{"_id":"client","title":"X","tags":["a"],"unknown":1}`))
	require.NoError(t, err)
	assert.Empty(t, doc.ID)
	assert.Equal(t, "X", doc.Title)
	assert.Equal(t, []string{"a"}, doc.Tags)
}

func TestDecode_Rejects(t *testing.T) {
	for name, body := range map[string]string{
		"malformed":     `{"title":`,
		"array":         `[1,2]`,
		"type mismatch": `{"title":5}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Decode[sample]([]byte(body))
			assert.Error(t, err)
		})
	}
}

func TestDecode_EmptyBody(t *testing.T) {
	doc, err := Decode[sample](nil)
	require.NoError(t, err)
	assert.Equal(t, sample{}, *doc)
}

func mustPatch(t *testing.T, body string) Patch {
	t.Helper()
	p, err := ParsePatch([]byte(body))
	require.NoError(t, err)
	return p
}

func TestParsePatch(t *testing.T) {
	p := mustPatch(t, `{"title":"new","_id":"2","note":null}`)
	assert.Equal(t, []string{"note", "title"}, p.Fields())

	assert.Empty(t, mustPatch(t, "  ").Fields())

	for name, body := range map[string]string{
		"malformed": `{bad`,
		"array":     `[{"title":"x"}]`,
		"string":    `"title"`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePatch([]byte(body))
			assert.Error(t, err)
		})
	}
}

func TestApply_OverwritesOnlySuppliedKeys(t *testing.T) {
	current := &sample{ID: "1", Title: "old", Owner: "me", Note: strPtr("keep"), Tags: []string{"a"}, Inner: inner{Label: "l"}}

	merged, err := Apply(current, mustPatch(t, `{"title":"new","_id":"2"}`))
	require.NoError(t, err)

	assert.Equal(t, "1", merged.ID)
	assert.Equal(t, "new", merged.Title)
	assert.Equal(t, "me", merged.Owner)
	assert.Equal(t, "keep", *merged.Note)
	assert.Equal(t, []string{"a"}, merged.Tags)
	assert.Equal(t, "old", current.Title, "current must not change")
}

func TestApply_NullClearsField(t *testing.T) {
	current := &sample{Title: "t", Owner: "o", Note: strPtr("n")}

	merged, err := Apply(current, mustPatch(t, `{"owner":null,"note":null}`))
	require.NoError(t, err)
	assert.Empty(t, merged.Owner)
	assert.Nil(t, merged.Note)
	assert.Error(t, Validate("Sample", merged))
}

func TestApply_ReplacesNestedObjectWhole(t *testing.T) {
	current := &sample{Title: "t", Owner: "o", Inner: inner{Label: "l"}}

	merged, err := Apply(current, mustPatch(t, `{"inner":{}}`))
	require.NoError(t, err)
	assert.Empty(t, merged.Inner.Label)
}

func TestApply_TypeMismatch(t *testing.T) {
	_, err := Apply(&sample{Title: "t"}, mustPatch(t, `{"title":5}`))
	assert.Error(t, err)
}
