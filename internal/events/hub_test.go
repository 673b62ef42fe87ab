package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/cipherledger-server/internal/model"
)

func TestHub_Deliver(t *testing.T) {
	t.Parallel()

	t.Run("fans out to every subscriber", func(t *testing.T) {
		t.Parallel()

		hub := NewHub(4)
		first, cancelFirst := hub.Subscribe()
		defer cancelFirst()
		second, cancelSecond := hub.Subscribe()
		defer cancelSecond()

		event := model.Event{ID: 1, Kind: model.EventDepositRequested}
		require.NoError(t, hub.Deliver(context.Background(), event))

		assert.Equal(t, event, <-first)
		assert.Equal(t, event, <-second)
	})

	t.Run("drops events for a full subscriber", func(t *testing.T) {
		t.Parallel()

		hub := NewHub(1)
		ch, cancel := hub.Subscribe()
		defer cancel()

		require.NoError(t, hub.Deliver(context.Background(), model.Event{ID: 1}))
		require.NoError(t, hub.Deliver(context.Background(), model.Event{ID: 2}))

		assert.Equal(t, uint64(1), (<-ch).ID)
		assert.Empty(t, ch)
	})

	t.Run("cancelled subscriber stops receiving", func(t *testing.T) {
		t.Parallel()

		hub := NewHub(1)
		ch, cancel := hub.Subscribe()
		assert.Equal(t, 1, hub.Subscribers())

		cancel()
		cancel()
		assert.Equal(t, 0, hub.Subscribers())

		require.NoError(t, hub.Deliver(context.Background(), model.Event{ID: 1}))
		assert.Empty(t, ch)
	})
}

func TestNewHub_DefaultBuffer(t *testing.T) {
	t.Parallel()

	hub := NewHub(0)
	ch, cancel := hub.Subscribe()
	defer cancel()

	assert.Equal(t, DefaultSubscriberBuffer, cap(ch))
	assert.Equal(t, "hub", hub.Name())
}
