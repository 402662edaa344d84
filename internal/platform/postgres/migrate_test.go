package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectMigrations(t *testing.T) {
	migrations, err := CollectMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 3)

	for i, m := range migrations {
		assert.Equal(t, int64(i+1), m.Version)
	}
	assert.Contains(t, migrations[2].Source, "create_flashcards")
}

func TestMigrate_UnknownCommand(t *testing.T) {
	db, _ := newMock(t)

	err := Migrate(context.Background(), db, discardLogger(), "sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown migration command "sideways"`)
}
