package repository

import (
	"context"
	"testing"

	"freezestore/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryClientRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryClientRepository()

	require.NoError(t, repo.Create(ctx, &model.Client{ID: "c1", Name: "Alimentos del Norte SA de CV"}))
	require.NoError(t, repo.Create(ctx, &model.Client{ID: "c2", Name: "Distribuidora La Fría"}))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "c1", all[0].ID)
	assert.Equal(t, "c2", all[1].ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
