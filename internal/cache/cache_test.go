package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tektronix/lib-trial-license-go/test/helper/testlogger"
)

func TestManager_StoreAndGet(t *testing.T) {
	logger := testlogger.New()

	m, err := New(time.Hour, logger)
	require.NoError(t, err)
	defer m.Close()

	_, found := m.Get("machine")
	assert.False(t, found)

	m.Store("machine", "abc123")

	got, found := m.Get("machine")
	require.True(t, found)
	assert.Equal(t, "abc123", got)
	assert.True(t, logger.Contains("DEBUG", "Cache hit for machine"))
}

func TestManager_Expiry(t *testing.T) {
	m, err := New(50*time.Millisecond, testlogger.New())
	require.NoError(t, err)
	defer m.Close()

	m.Store("machine", "abc123")

	assert.Eventually(t, func() bool {
		_, found := m.Get("machine")
		return !found
	}, 2*time.Second, 20*time.Millisecond)
}
