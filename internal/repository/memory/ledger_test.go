package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/cipherledger-server/internal/model"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock(at *time.Time) func() time.Time {
	return func() time.Time { return *at }
}

func TestLedgerStore_UpdateCommitsOnSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewLedgerStore(nil)
	idx := model.AccountIndex{1}

	err := store.Update(ctx, func(tx model.LedgerTx) error {
		require.NoError(t, tx.InitConfig(ctx, model.LedgerConfig{Authority: "auth", CustodyAsset: "asset"}))
		seq, err := tx.NextSequence(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), seq)
		require.NoError(t, tx.SetUserIndex(ctx, "alice", []byte{0xaa}))
		require.NoError(t, tx.SetSupply(ctx, uint256.NewInt(42)))
		return tx.PutBalance(ctx, idx, model.EncryptedBalance{EncryptedAmount: []byte{1}, Exists: true})
	})
	require.NoError(t, err)

	err = store.View(ctx, func(r model.LedgerReader) error {
		cfg, err := r.Config(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.Address("auth"), cfg.Authority)

		seq, err := r.Sequence(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), seq)

		userIndex, err := r.UserIndex(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, []byte{0xaa}, userIndex)

		supply, err := r.Supply(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), supply.Uint64())

		balance, err := r.Balance(ctx, idx)
		require.NoError(t, err)
		assert.True(t, balance.Exists)
		assert.Equal(t, []byte{1}, balance.EncryptedAmount)
		return nil
	})
	require.NoError(t, err)
}

func TestLedgerStore_UpdateDiscardsOnError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewLedgerStore(nil)
	boom := errors.New("boom")

	err := store.Update(ctx, func(tx model.LedgerTx) error {
		require.NoError(t, tx.InitConfig(ctx, model.LedgerConfig{Authority: "auth"}))
		_, err := tx.NextSequence(ctx)
		require.NoError(t, err)
		_, err = tx.AppendEvent(ctx, model.Event{Kind: model.EventLedgerInitialized})
		require.NoError(t, err)
		require.NoError(t, tx.MarkDepositCompleted(ctx, model.Hash{9}, 1))
		return boom
	})
	require.ErrorIs(t, err, boom)

	err = store.View(ctx, func(r model.LedgerReader) error {
		_, err := r.Config(ctx)
		assert.ErrorIs(t, err, model.ErrNotFound)

		seq, _ := r.Sequence(ctx)
		assert.Zero(t, seq)

		events, _ := r.Events(ctx, 0, 0)
		assert.Empty(t, events)

		done, _ := r.DepositCompleted(ctx, model.Hash{9})
		assert.False(t, done)
		return nil
	})
	require.NoError(t, err)
}

func TestLedgerStore_InitConfigOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewLedgerStore(nil)

	init := func(tx model.LedgerTx) error {
		return tx.InitConfig(ctx, model.LedgerConfig{Authority: "auth"})
	}
	require.NoError(t, store.Update(ctx, init))
	assert.ErrorIs(t, store.Update(ctx, init), model.ErrAlreadyInitialized)
}

func TestLedgerStore_ReadsAbsentKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewLedgerStore(nil)

	err := store.View(ctx, func(r model.LedgerReader) error {
		_, err := r.UserIndex(ctx, "nobody")
		assert.ErrorIs(t, err, model.ErrNotFound)

		_, err = r.Balance(ctx, model.AccountIndex{1})
		assert.ErrorIs(t, err, model.ErrNotFound)

		_, err = r.DepositRequest(ctx, model.Hash{1})
		assert.ErrorIs(t, err, model.ErrNotFound)

		_, err = r.TransferRequest(ctx, model.Hash{1})
		assert.ErrorIs(t, err, model.ErrNotFound)

		done, err := r.TransferCompleted(ctx, model.Hash{1})
		require.NoError(t, err)
		assert.False(t, done)
		return nil
	})
	require.NoError(t, err)
}

func TestLedgerStore_RequestsExpire(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := baseTime
	store := NewLedgerStore(fixedClock(&now))

	deposit := model.DepositRequest{RequestID: model.Hash{1}, User: "alice", Amount: 5, EncryptedIndex: []byte{7}, Exists: true}
	transfer := model.TransferRequest{TransferID: model.Hash{2}, Sender: "alice", EncryptedAmount: []byte{3}, Exists: true}
	kept := model.DepositRequest{RequestID: model.Hash{3}, User: "bob", Amount: 1, Exists: true}

	err := store.Update(ctx, func(tx model.LedgerTx) error {
		require.NoError(t, tx.PutDepositRequest(ctx, deposit, baseTime.Add(time.Hour)))
		require.NoError(t, tx.PutTransferRequest(ctx, transfer, baseTime.Add(time.Hour)))
		return tx.PutDepositRequest(ctx, kept, baseTime.Add(2*time.Hour))
	})
	require.NoError(t, err)

	err = store.View(ctx, func(r model.LedgerReader) error {
		got, err := r.DepositRequest(ctx, deposit.RequestID)
		require.NoError(t, err)
		assert.Equal(t, deposit, got)
		return nil
	})
	require.NoError(t, err)

	now = baseTime.Add(time.Hour)

	err = store.View(ctx, func(r model.LedgerReader) error {
		_, err := r.DepositRequest(ctx, deposit.RequestID)
		assert.ErrorIs(t, err, model.ErrNotFound)
		_, err = r.TransferRequest(ctx, transfer.TransferID)
		assert.ErrorIs(t, err, model.ErrNotFound)
		return nil
	})
	require.NoError(t, err)

	purged, err := store.PurgeExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), purged)

	purged, err = store.PurgeExpired(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, purged)

	err = store.View(ctx, func(r model.LedgerReader) error {
		_, err := r.DepositRequest(ctx, kept.RequestID)
		assert.NoError(t, err)
		return nil
	})
	require.NoError(t, err)
}

func TestLedgerStore_Events(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewLedgerStore(nil)

	for i := 0; i < 5; i++ {
		err := store.Update(ctx, func(tx model.LedgerTx) error {
			event, err := tx.AppendEvent(ctx, model.Event{Kind: model.EventUserAuthenticated, Ledger: uint64(i + 1)})
			require.NoError(t, err)
			assert.Equal(t, uint64(i+1), event.ID)
			return nil
		})
		require.NoError(t, err)
	}

	tests := []struct {
		name    string
		afterID uint64
		limit   int
		want    []uint64
	}{
		{name: "all", afterID: 0, limit: 0, want: []uint64{1, 2, 3, 4, 5}},
		{name: "after cursor", afterID: 3, limit: 0, want: []uint64{4, 5}},
		{name: "limited", afterID: 1, limit: 2, want: []uint64{2, 3}},
		{name: "past the end", afterID: 5, limit: 10, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got []uint64
			err := store.View(ctx, func(r model.LedgerReader) error {
				events, err := r.Events(ctx, tt.afterID, tt.limit)
				for _, e := range events {
					got = append(got, e.ID)
				}
				return err
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLedgerStore_ReturnedBytesAreCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewLedgerStore(nil)
	idx := model.AccountIndex{4}
	amount := []byte{1, 2, 3}

	err := store.Update(ctx, func(tx model.LedgerTx) error {
		return tx.PutBalance(ctx, idx, model.EncryptedBalance{EncryptedAmount: amount, Exists: true})
	})
	require.NoError(t, err)
	amount[0] = 0xff

	err = store.View(ctx, func(r model.LedgerReader) error {
		balance, err := r.Balance(ctx, idx)
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3}, balance.EncryptedAmount)

		balance.EncryptedAmount[1] = 0xff
		again, err := r.Balance(ctx, idx)
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3}, again.EncryptedAmount)
		return nil
	})
	require.NoError(t, err)
}

func TestLedgerStore_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewLedgerStore(nil)
	err := store.Update(ctx, func(model.LedgerTx) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)

	err = store.View(ctx, func(model.LedgerReader) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
