//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/cipherledger-server/internal/model"
	repo "github.com/dtroode/cipherledger-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "cipherledger_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/cipherledger_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestRepositories_Auth(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	t.Run("login_repository", func(t *testing.T) {
		lr := repo.NewLoginRepository(conn)
		pl := model.PendingLogin{
			SessionID: uuid.NewString(),
			Address:   "addr-login",
			Nonce:     []byte{1, 2, 3},
			ExpiresAt: time.Now().Add(time.Hour),
		}
		require.NoError(t, lr.Create(ctx, pl))

		got, err := lr.GetBySessionID(ctx, pl.SessionID)
		require.NoError(t, err)
		require.Equal(t, pl.Address, got.Address)
		require.Equal(t, pl.Nonce, got.Nonce)

		require.NoError(t, lr.Consume(ctx, pl.SessionID))
		require.ErrorIs(t, lr.Consume(ctx, pl.SessionID), model.ErrSessionConsumed)

		_, err = lr.GetBySessionID(ctx, uuid.NewString())
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("refresh_token_repository", func(t *testing.T) {
		rr := repo.NewRefreshTokenRepository(conn)
		token := model.RefreshToken{
			JTI:       uuid.NewString(),
			Address:   "addr-refresh",
			TokenHash: []byte("hash"),
			IssuedAt:  time.Now(),
			ExpiresAt: time.Now().Add(time.Hour),
		}
		require.NoError(t, rr.Create(ctx, token))

		got, err := rr.GetByJTI(ctx, token.JTI)
		require.NoError(t, err)
		require.Equal(t, token.Address, got.Address)
		require.Nil(t, got.RevokedAt)

		require.NoError(t, rr.RevokeAllByAddress(ctx, token.Address))
		got, err = rr.GetByJTI(ctx, token.JTI)
		require.NoError(t, err)
		require.NotNil(t, got.RevokedAt)

		rotated := token
		rotated.ID = uuid.Nil
		rotated.JTI = uuid.NewString()
		require.NoError(t, rr.Create(ctx, rotated))
		require.NoError(t, rr.RevokeByJTI(ctx, rotated.JTI))
		require.ErrorIs(t, rr.RevokeByJTI(ctx, rotated.JTI), model.ErrTokenRevoked)

		_, err = rr.GetByJTI(ctx, uuid.NewString())
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestLedgerRepository(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	now := time.Now().UTC().Truncate(time.Microsecond)
	store := repo.NewLedgerRepository(conn, func() time.Time { return now })

	requestID := model.Hash{0xd1}
	index := model.AccountIndex{0xa1}

	err = store.Update(ctx, func(tx model.LedgerTx) error {
		require.NoError(t, tx.InitConfig(ctx, model.LedgerConfig{
			Authority: "authority", CustodyAsset: "asset", CustodyAccount: "custody", InitializedAt: now,
		}))
		seq, err := tx.NextSequence(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.SetUserIndex(ctx, "alice", []byte{0xaa}))
		require.NoError(t, tx.PutDepositRequest(ctx, model.DepositRequest{
			RequestID: requestID, User: "alice", Amount: 10, Timestamp: now, Ledger: seq, EncryptedIndex: []byte{0xaa},
		}, now.Add(time.Hour)))
		require.NoError(t, tx.PutBalance(ctx, index, model.EncryptedBalance{
			EncryptedAmount: []byte{1}, EncryptedKeyUser: []byte{2}, EncryptedKeyServer: nil, Timestamp: now,
		}))
		require.NoError(t, tx.SetSupply(ctx, new(uint256.Int).SetAllOne()))
		require.NoError(t, tx.MarkDepositCompleted(ctx, requestID, seq))

		event, err := tx.AppendEvent(ctx, model.Event{
			Ledger: seq, Kind: model.EventBalanceStored, Payload: []byte(`{"a":1}`), CreatedAt: now,
		})
		require.NoError(t, err)
		require.NotZero(t, event.ID)
		return nil
	})
	require.NoError(t, err)

	err = store.Update(ctx, func(tx model.LedgerTx) error {
		return tx.InitConfig(ctx, model.LedgerConfig{Authority: "other", InitializedAt: now})
	})
	require.ErrorIs(t, err, model.ErrAlreadyInitialized)

	err = store.View(ctx, func(r model.LedgerReader) error {
		cfg, err := r.Config(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.Address("authority"), cfg.Authority)

		supply, err := r.Supply(ctx)
		require.NoError(t, err)
		assert.Equal(t, new(uint256.Int).SetAllOne(), supply)

		req, err := r.DepositRequest(ctx, requestID)
		require.NoError(t, err)
		assert.Equal(t, int64(10), req.Amount)
		assert.True(t, req.Exists)

		balance, err := r.Balance(ctx, index)
		require.NoError(t, err)
		assert.Equal(t, []byte{}, balance.EncryptedKeyServer)

		done, err := r.DepositCompleted(ctx, requestID)
		require.NoError(t, err)
		assert.True(t, done)

		events, err := r.Events(ctx, 0, 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.JSONEq(t, `{"a":1}`, string(events[0].Payload))
		return nil
	})
	require.NoError(t, err)

	t.Run("failed update leaves no trace", func(t *testing.T) {
		err := store.Update(ctx, func(tx model.LedgerTx) error {
			_, err := tx.NextSequence(ctx)
			require.NoError(t, err)
			require.NoError(t, tx.MarkTransferCompleted(ctx, model.Hash{0xee}, 99))
			return model.ErrUnauthorized
		})
		require.ErrorIs(t, err, model.ErrUnauthorized)

		err = store.View(ctx, func(r model.LedgerReader) error {
			done, err := r.TransferCompleted(ctx, model.Hash{0xee})
			require.NoError(t, err)
			assert.False(t, done)

			seq, err := r.Sequence(ctx)
			require.NoError(t, err)
			assert.Equal(t, uint64(1), seq)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("concurrent updates are serialized", func(t *testing.T) {
		const workers = 8

		var wg sync.WaitGroup
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := store.Update(ctx, func(tx model.LedgerTx) error {
					_, err := tx.NextSequence(ctx)
					return err
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		err := store.View(ctx, func(r model.LedgerReader) error {
			seq, err := r.Sequence(ctx)
			require.NoError(t, err)
			assert.Equal(t, uint64(1+workers), seq)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("purge expired requests", func(t *testing.T) {
		purged, err := store.PurgeExpired(ctx, now.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(1), purged)

		err = store.View(ctx, func(r model.LedgerReader) error {
			_, err := r.DepositRequest(ctx, requestID)
			assert.ErrorIs(t, err, model.ErrNotFound)
			return nil
		})
		require.NoError(t, err)
	})
}
