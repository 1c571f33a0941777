package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRepository(t *testing.T) {
	repo := CreateStateRepository(newTestDB(t))
	ctx := context.Background()

	state, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, state)

	require.NoError(t, repo.SetMany(ctx, nil))

	require.NoError(t, repo.SetMany(ctx, map[string]string{"tab": "queue", "url": "https://example.com"}))
	require.NoError(t, repo.SetMany(ctx, map[string]string{"tab": "history"}))

	state, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"tab": "history", "url": "https://example.com"}, state)
}
