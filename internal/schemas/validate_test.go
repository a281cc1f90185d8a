package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_TailorResponseValid(t *testing.T) {
	doc := `{
		"summary": "Two sentences about the candidate.",
		"cover_letter": "Dear hiring manager...",
		"optimized_experiences": [{"id": "exp-1", "bullets": ["Did a thing"]}],
		"optimized_projects": [{"id": "proj-1", "bullets": ["Built a thing"]}]
	}`

	assert.NoError(t, Validate(TailorResponseSchema, doc))
}

func TestValidate_MinimalResponseValid(t *testing.T) {
	// optimized_* arrays are optional; summary and cover_letter are not.
	assert.NoError(t, Validate(TailorResponseSchema, `{"summary": "s", "cover_letter": "c"}`))
}

func TestValidate_MissingRequiredField(t *testing.T) {
	err := Validate(TailorResponseSchema, `{"summary": "only a summary"}`)

	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidate_OptimizedItemMissingID(t *testing.T) {
	doc := `{
		"summary": "s",
		"cover_letter": "c",
		"optimized_experiences": [{"bullets": ["no id here"]}]
	}`

	var ve *ValidationError
	require.ErrorAs(t, Validate(TailorResponseSchema, doc), &ve)
}

func TestValidate_WrongTypes(t *testing.T) {
	doc := `{"summary": 42, "cover_letter": "c"}`

	var ve *ValidationError
	require.ErrorAs(t, Validate(TailorResponseSchema, doc), &ve)
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("nope.schema.json", `{}`)

	var le *SchemaLoadError
	require.ErrorAs(t, err, &le)
}

func TestValidate_MalformedDocument(t *testing.T) {
	assert.Error(t, Validate(TailorResponseSchema, `{not json`))
}
