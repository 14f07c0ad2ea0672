package metrics

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/DominikMe/acs-token-exchange/internal/cache"
	"github.com/DominikMe/acs-token-exchange/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGaugeCacheWrapper_MappingsCount_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := mocks.NewMockMappingCounter(ctrl)
	mockCache := mocks.NewMockCache[int64](ctrl)

	mockStore.EXPECT().CountMappings(gomock.Any()).Return(int64(42), nil).Times(1)
	mockCache.EXPECT().
		Get(gomock.Any(), "gauge:mappings_total").
		Return(int64(0), cache.ErrCacheMiss)
	mockCache.EXPECT().
		Set(gomock.Any(), "gauge:mappings_total", int64(42), time.Minute).
		Return(nil)

	w := NewGaugeCacheWrapper(mockStore, mockCache)
	count, err := w.MappingsCount(context.Background(), time.Minute)
	require.NoError(t, err)
	assert.EqualValues(t, 42, count)
}

func TestGaugeCacheWrapper_MappingsCount_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := mocks.NewMockMappingCounter(ctrl)
	mockCache := mocks.NewMockCache[int64](ctrl)

	// Store must not be queried on a hit.
	mockCache.EXPECT().Get(gomock.Any(), "gauge:mappings_total").Return(int64(7), nil)

	w := NewGaugeCacheWrapper(mockStore, mockCache)
	count, err := w.MappingsCount(context.Background(), time.Minute)
	require.NoError(t, err)
	assert.EqualValues(t, 7, count)
}

func TestGaugeCacheWrapper_ExpiringMappingsCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := mocks.NewMockMappingCounter(ctrl)
	mockCache := mocks.NewMockCache[int64](ctrl)

	mockStore.EXPECT().
		CountExpiringMappings(gomock.Any(), time.Hour).
		Return(int64(3), nil).
		Times(1)
	mockCache.EXPECT().
		Get(gomock.Any(), "gauge:mappings_expiring").
		Return(int64(0), cache.ErrCacheMiss)
	mockCache.EXPECT().
		Set(gomock.Any(), "gauge:mappings_expiring", int64(3), time.Minute).
		Return(nil)

	w := NewGaugeCacheWrapper(mockStore, mockCache)
	count, err := w.ExpiringMappingsCount(context.Background(), time.Hour, time.Minute)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}
