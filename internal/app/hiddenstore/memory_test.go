package hiddenstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStoreAddAndLoad(t *testing.T) {
	store := CreateMemoryStore()

	jobIDs, err := store.Load(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, jobIDs)

	assert.NoError(t, store.Add(context.Background(), "j1"))
	assert.NoError(t, store.Add(context.Background(), "j2"))
	assert.NoError(t, store.Add(context.Background(), "j1"))

	jobIDs, err = store.Load(context.Background())
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"j1", "j2"}, jobIDs)
}
