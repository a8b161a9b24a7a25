package repository

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/customer-insights-api/internal/domain"
)

func TestMemoryProcessedEventRepository_MarkAndCheck(t *testing.T) {
	repo := NewMemoryProcessedEventRepository()

	processed, err := repo.IsProcessed("evt_001")
	require.NoError(t, err)
	assert.False(t, processed)

	err = repo.MarkProcessed(&domain.ProcessedWebhookEvent{
		EventID:    "evt_001",
		EventType:  "charge.succeeded",
		CustomerID: "cus_001",
		ReceivedAt: time.Now(),
	})
	require.NoError(t, err)

	processed, err = repo.IsProcessed("evt_001")
	require.NoError(t, err)
	assert.True(t, processed)
}

func TestMemoryProcessedEventRepository_DuplicateMarkIsIdempotent(t *testing.T) {
	repo := NewMemoryProcessedEventRepository()

	event := &domain.ProcessedWebhookEvent{EventID: "evt_dup", ReceivedAt: time.Now()}

	require.NoError(t, repo.MarkProcessed(event))
	require.NoError(t, repo.MarkProcessed(event))

	processed, err := repo.IsProcessed("evt_dup")
	require.NoError(t, err)
	assert.True(t, processed)
}

func TestMemoryProcessedEventRepository_DeleteOlderThan(t *testing.T) {
	repo := NewMemoryProcessedEventRepository()

	require.NoError(t, repo.MarkProcessed(&domain.ProcessedWebhookEvent{
		EventID:    "evt_old",
		ReceivedAt: time.Now().Add(-100 * time.Hour),
	}))
	require.NoError(t, repo.MarkProcessed(&domain.ProcessedWebhookEvent{
		EventID:    "evt_recent",
		ReceivedAt: time.Now(),
	}))

	removed, err := repo.DeleteOlderThan(72 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	processed, err := repo.IsProcessed("evt_old")
	require.NoError(t, err)
	assert.False(t, processed)

	processed, err = repo.IsProcessed("evt_recent")
	require.NoError(t, err)
	assert.True(t, processed)
}

func TestMemoryProcessedEventRepository_ConcurrentAccess(t *testing.T) {
	repo := NewMemoryProcessedEventRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = repo.MarkProcessed(&domain.ProcessedWebhookEvent{
				EventID:    "evt_conc",
				ReceivedAt: time.Now(),
			})
		}()
		go func() {
			defer wg.Done()
			_, _ = repo.IsProcessed("evt_conc")
		}()
	}
	wg.Wait()

	processed, err := repo.IsProcessed("evt_conc")
	require.NoError(t, err)
	assert.True(t, processed)
}
