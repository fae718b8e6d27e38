package repository_test

import (
	"context"
	"testing"

	"github.com/nyayak/docket/internal/repository"
	"github.com/nyayak/docket/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_SeededBuffer(t *testing.T) {
	repo := repository.NewSQLiteSettingsRepo(testutil.NewTestDB(t))

	value, err := repo.Get(context.Background(), "buffer_minutes")
	require.NoError(t, err)
	assert.Equal(t, "20", value)
}

func TestSettingsRepo_SetOverwrites(t *testing.T) {
	repo := repository.NewSQLiteSettingsRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "buffer_minutes", "30"))
	value, err := repo.Get(ctx, "buffer_minutes")
	require.NoError(t, err)
	assert.Equal(t, "30", value)

	require.NoError(t, repo.Set(ctx, "buffer_minutes", "45"))
	value, err = repo.Get(ctx, "buffer_minutes")
	require.NoError(t, err)
	assert.Equal(t, "45", value)
}

func TestSettingsRepo_MissingKey(t *testing.T) {
	repo := repository.NewSQLiteSettingsRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), "no_such_key")
	assert.ErrorIs(t, err, repository.ErrSettingNotFound)
}
