package db

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/google/uuid"
)

func TestEmptyIfNil(t *testing.T) {
	assert.Equal(t, []string{}, emptyIfNil(nil))
	assert.Equal(t, []string{"a"}, emptyIfNil([]string{"a"}))
}

func TestEmptyUUIDsIfNil(t *testing.T) {
	assert.Equal(t, []uuid.UUID{}, emptyUUIDsIfNil(nil))

	id := uuid.New()
	assert.Equal(t, []uuid.UUID{id}, emptyUUIDsIfNil([]uuid.UUID{id}))
}

func TestSchemaEmbedded(t *testing.T) {
	assert.Contains(t, schemaSQL, "CREATE TABLE IF NOT EXISTS career_profiles")
	assert.Contains(t, schemaSQL, "CREATE TABLE IF NOT EXISTS generation_history")
}
