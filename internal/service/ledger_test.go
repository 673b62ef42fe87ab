package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	grpccontext "github.com/dtroode/cipherledger-server/internal/api/grpc/context"
	"github.com/dtroode/cipherledger-server/internal/account"
	"github.com/dtroode/cipherledger-server/internal/hasher"
	"github.com/dtroode/cipherledger-server/internal/mocks"
	"github.com/dtroode/cipherledger-server/internal/model"
	"github.com/dtroode/cipherledger-server/internal/repository/memory"
	"github.com/dtroode/cipherledger-server/internal/testutil"
)

const (
	testAsset   = "USDC:GA5ZSEJYB37JRC5AVCIA5MOP4RHTM335X2KGX3IHOJAPP5RE34K4KZVN"
	testCustody = "cipherledger-custody"
	testTTL     = time.Hour
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []model.Event
}

func (p *recordingPublisher) Publish(_ context.Context, events ...model.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
}

func (p *recordingPublisher) Kinds() []model.EventKind {
	p.mu.Lock()
	defer p.mu.Unlock()
	kinds := make([]model.EventKind, 0, len(p.events))
	for _, e := range p.events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

type ledgerFixture struct {
	ledger    *Ledger
	store     *memory.LedgerStore
	custody   *mocks.Custody
	publisher *recordingPublisher
	clock     *fakeClock
	contexts  *grpccontext.Manager
	hasher    model.Hasher
	authority model.Address
	user      model.Address
	other     model.Address
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	clock := newFakeClock()
	contexts := grpccontext.NewManager()
	f := &ledgerFixture{
		store:     memory.NewLedgerStore(clock.Now),
		custody:   mocks.NewCustody(t),
		publisher: &recordingPublisher{},
		clock:     clock,
		contexts:  contexts,
		hasher:    hasher.NewKeccak(),
		authority: testAddress(t, 1),
		user:      testAddress(t, 2),
		other:     testAddress(t, 3),
	}
	f.ledger = NewLedger(
		f.store,
		f.hasher,
		grpccontext.NewGate(contexts),
		f.custody,
		f.publisher,
		testTTL,
		testutil.MakeNoopLogger(),
		WithClock(clock.Now),
	)
	return f
}

func testAddress(t *testing.T, seed byte) model.Address {
	t.Helper()
	address, _, err := account.FromSeed(bytes.Repeat([]byte{seed}, 32))
	require.NoError(t, err)
	return address
}

func (f *ledgerFixture) as(address model.Address) context.Context {
	return f.contexts.SetAddressToContext(context.Background(), address)
}

func (f *ledgerFixture) initialize(t *testing.T) {
	t.Helper()
	err := f.ledger.Initialize(f.as(f.authority), model.InitializeParams{
		Authority:      f.authority,
		CustodyAsset:   testAsset,
		CustodyAccount: testCustody,
	})
	require.NoError(t, err)
}

func (f *ledgerFixture) expectCustody(user model.Address, amount int64, index []byte) {
	f.custody.On("Transfer", mock.Anything, model.CustodyTransfer{
		Reference: f.hasher.Hash(index).Hex(),
		Asset:     testAsset,
		From:      user.String(),
		To:        testCustody,
		Amount:    amount,
	}).Return(nil).Once()
}

func (f *ledgerFixture) supply(t *testing.T) *uint256.Int {
	t.Helper()
	supply, err := f.ledger.EncryptedSupply(context.Background())
	require.NoError(t, err)
	return supply
}

func (f *ledgerFixture) sequence(t *testing.T) uint64 {
	t.Helper()
	seq, err := f.ledger.Sequence(context.Background())
	require.NoError(t, err)
	return seq
}

func index(b byte) model.AccountIndex {
	var idx model.AccountIndex
	for i := range idx {
		idx[i] = b
	}
	return idx
}

func TestLedger_Initialize(t *testing.T) {
	t.Parallel()

	t.Run("sets configuration and zero supply", func(t *testing.T) {
		t.Parallel()
		f := newLedgerFixture(t)
		ctx := context.Background()

		f.initialize(t)

		manager, err := f.ledger.ServerManager(ctx)
		require.NoError(t, err)
		assert.Equal(t, f.authority, manager)

		asset, err := f.ledger.TokenContract(ctx)
		require.NoError(t, err)
		assert.Equal(t, testAsset, asset)

		assert.True(t, f.supply(t).IsZero())
		assert.Equal(t, []model.EventKind{model.EventLedgerInitialized}, f.publisher.Kinds())
	})

	t.Run("second call fails with configuration error", func(t *testing.T) {
		t.Parallel()
		f := newLedgerFixture(t)
		f.initialize(t)

		err := f.ledger.Initialize(f.as(f.other), model.InitializeParams{
			Authority:      f.other,
			CustodyAsset:   "other",
			CustodyAccount: testCustody,
		})
		require.ErrorIs(t, err, model.ErrAlreadyInitialized)
		assert.ErrorIs(t, err, model.ErrConfiguration)

		manager, err := f.ledger.ServerManager(context.Background())
		require.NoError(t, err)
		assert.Equal(t, f.authority, manager)
	})

	t.Run("rejects invalid parameters", func(t *testing.T) {
		t.Parallel()
		f := newLedgerFixture(t)

		tests := []struct {
			name    string
			params  model.InitializeParams
			wantErr error
		}{
			{
				name:    "malformed authority",
				params:  model.InitializeParams{Authority: "nope", CustodyAsset: testAsset, CustodyAccount: testCustody},
				wantErr: model.ErrInvalidAddress,
			},
			{
				name:    "missing custody asset",
				params:  model.InitializeParams{Authority: f.authority, CustodyAccount: testCustody},
				wantErr: model.ErrValidation,
			},
			{
				name:    "missing custody account",
				params:  model.InitializeParams{Authority: f.authority, CustodyAsset: testAsset},
				wantErr: model.ErrValidation,
			},
		}

		for _, tt := range tests {
			err := f.ledger.Initialize(f.as(f.authority), tt.params)
			assert.ErrorIs(t, err, tt.wantErr, tt.name)
		}

		_, err := f.ledger.ServerManager(context.Background())
		assert.ErrorIs(t, err, model.ErrNotInitialized)
	})

	t.Run("caller must be the authority", func(t *testing.T) {
		t.Parallel()
		f := newLedgerFixture(t)

		err := f.ledger.Initialize(f.as(f.user), model.InitializeParams{
			Authority:      f.authority,
			CustodyAsset:   testAsset,
			CustodyAccount: testCustody,
		})
		require.ErrorIs(t, err, model.ErrUnauthorized)

		_, err = f.ledger.TokenContract(context.Background())
		assert.ErrorIs(t, err, model.ErrNotInitialized)
	})
}

func TestLedger_Bootstrap(t *testing.T) {
	t.Parallel()

	f := newLedgerFixture(t)
	params := model.InitializeParams{Authority: f.authority, CustodyAsset: testAsset, CustodyAccount: testCustody}

	created, err := f.ledger.Bootstrap(context.Background(), params)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = f.ledger.Bootstrap(context.Background(), params)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestLedger_NotInitialized(t *testing.T) {
	t.Parallel()

	f := newLedgerFixture(t)

	err := f.ledger.AuthenticateUser(f.as(f.user), f.user, []byte("idx"))
	assert.ErrorIs(t, err, model.ErrNotInitialized)

	_, err = f.ledger.RequestDeposit(f.as(f.user), f.user, 10, []byte("idx"))
	assert.ErrorIs(t, err, model.ErrNotInitialized)

	_, err = f.ledger.RequestTransfer(f.as(f.user), f.user, []byte("r"), []byte("m"))
	assert.ErrorIs(t, err, model.ErrNotInitialized)

	err = f.ledger.ProcessTransfer(f.as(f.authority), model.ProcessTransferParams{})
	assert.ErrorIs(t, err, model.ErrNotInitialized)

	assert.Empty(t, f.publisher.Kinds())
}

func TestLedger_AuthenticateUser(t *testing.T) {
	t.Parallel()

	t.Run("last write wins", func(t *testing.T) {
		t.Parallel()
		f := newLedgerFixture(t)
		f.initialize(t)
		ctx := f.as(f.user)

		require.NoError(t, f.ledger.AuthenticateUser(ctx, f.user, []byte("first")))
		require.NoError(t, f.ledger.AuthenticateUser(ctx, f.user, []byte("second")))

		got, err := f.ledger.UserIndex(context.Background(), f.user)
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), got)

		assert.Equal(t, []model.EventKind{
			model.EventLedgerInitialized,
			model.EventUserAuthenticated,
			model.EventUserAuthenticated,
		}, f.publisher.Kinds())
	})

	t.Run("other caller is rejected", func(t *testing.T) {
		t.Parallel()
		f := newLedgerFixture(t)
		f.initialize(t)

		err := f.ledger.AuthenticateUser(f.as(f.other), f.user, []byte("idx"))
		require.ErrorIs(t, err, model.ErrUnauthorized)

		got, err := f.ledger.UserIndex(context.Background(), f.user)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestLedger_RequestDeposit_InvalidAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount int64
	}{
		{name: "zero", amount: 0},
		{name: "negative", amount: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newLedgerFixture(t)
			f.initialize(t)
			idx := []byte("opaque-index")

			_, err := f.ledger.RequestDeposit(f.as(f.user), f.user, tt.amount, idx)
			require.ErrorIs(t, err, model.ErrInvalidAmount)
			assert.ErrorIs(t, err, model.ErrValidation)

			req, err := f.ledger.DepositRequest(context.Background(), f.hasher.Hash(idx))
			require.NoError(t, err)
			assert.False(t, req.Exists)

			got, err := f.ledger.UserIndex(context.Background(), f.user)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestLedger_RequestDeposit(t *testing.T) {
	t.Parallel()

	t.Run("records request and registers index", func(t *testing.T) {
		t.Parallel()
		f := newLedgerFixture(t)
		f.initialize(t)
		idx := []byte("opaque-index")
		f.expectCustody(f.user, 100, idx)

		id, err := f.ledger.RequestDeposit(f.as(f.user), f.user, 100, idx)
		require.NoError(t, err)
		assert.Equal(t, f.hasher.Hash(idx), id)

		req, err := f.ledger.DepositRequest(context.Background(), id)
		require.NoError(t, err)
		assert.True(t, req.Exists)
		assert.Equal(t, f.user, req.User)
		assert.Equal(t, int64(100), req.Amount)
		assert.Equal(t, idx, req.EncryptedIndex)
		assert.Equal(t, f.clock.Now(), req.Timestamp)
		assert.Equal(t, f.sequence(t), req.Ledger)

		got, err := f.ledger.UserIndex(context.Background(), f.user)
		require.NoError(t, err)
		assert.Equal(t, idx, got)

		done, err := f.ledger.DepositCompleted(context.Background(), id)
		require.NoError(t, err)
		assert.False(t, done)
	})

	t.Run("keeps an existing index", func(t *testing.T) {
		t.Parallel()
		f := newLedgerFixture(t)
		f.initialize(t)
		require.NoError(t, f.ledger.AuthenticateUser(f.as(f.user), f.user, []byte("registered")))
		f.expectCustody(f.user, 7, []byte("other"))

		_, err := f.ledger.RequestDeposit(f.as(f.user), f.user, 7, []byte("other"))
		require.NoError(t, err)

		got, err := f.ledger.UserIndex(context.Background(), f.user)
		require.NoError(t, err)
		assert.Equal(t, []byte("registered"), got)
	})

	t.Run("emits request id with index twice", func(t *testing.T) {
		t.Parallel()
		f := newLedgerFixture(t)
		f.initialize(t)
		idx := []byte("opaque-index")
		f.expectCustody(f.user, 1, idx)

		id, err := f.ledger.RequestDeposit(f.as(f.user), f.user, 1, idx)
		require.NoError(t, err)

		events, err := f.ledger.ListEvents(context.Background(), 0, 0)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, model.EventDepositRequested, events[1].Kind)

		var payload model.DepositRequestedPayload
		require.NoError(t, json.Unmarshal(events[1].Payload, &payload))
		assert.Equal(t, id, payload.RequestID)
		assert.Equal(t, idx, payload.PackedData)
		assert.Equal(t, idx, payload.EncryptedIndex)
	})

	t.Run("resubmission overwrites unfulfilled request", func(t *testing.T) {
		t.Parallel()
		f := newLedgerFixture(t)
		f.initialize(t)
		idx := []byte("same")
		f.expectCustody(f.user, 5, idx)
		f.expectCustody(f.user, 9, idx)

		first, err := f.ledger.RequestDeposit(f.as(f.user), f.user, 5, idx)
		require.NoError(t, err)
		second, err := f.ledger.RequestDeposit(f.as(f.user), f.user, 9, idx)
		require.NoError(t, err)
		assert.Equal(t, first, second)

		req, err := f.ledger.DepositRequest(context.Background(), first)
		require.NoError(t, err)
		assert.Equal(t, int64(9), req.Amount)
	})

	t.Run("custody transfer runs outside the store update", func(t *testing.T) {
		t.Parallel()
		f := newLedgerFixture(t)
		f.initialize(t)
		idx := []byte("opaque-index")

		f.custody.On("Transfer", mock.Anything, mock.MatchedBy(func(ct model.CustodyTransfer) bool {
			return ct.Reference == f.hasher.Hash(idx).Hex()
		})).Run(func(mock.Arguments) {
			done := make(chan error, 1)
			go func() {
				done <- f.store.Update(context.Background(), func(model.LedgerTx) error { return nil })
			}()
			select {
			case err := <-done:
				assert.NoError(t, err)
			case <-time.After(time.Second):
				t.Error("store stayed locked during the custody transfer")
			}
		}).Return(nil).Once()

		_, err := f.ledger.RequestDeposit(f.as(f.user), f.user, 10, idx)
		require.NoError(t, err)
	})

	t.Run("uninitialized ledger skips custody", func(t *testing.T) {
		t.Parallel()
		f := newLedgerFixture(t)

		_, err := f.ledger.RequestDeposit(f.as(f.user), f.user, 10, []byte("idx"))
		require.ErrorIs(t, err, model.ErrNotInitialized)
	})

	t.Run("custody failure aborts the call", func(t *testing.T) {
		t.Parallel()
		f := newLedgerFixture(t)
		f.initialize(t)
		idx := []byte("opaque-index")
		before := f.sequence(t)
		f.custody.On("Transfer", mock.Anything, mock.Anything).Return(errors.New("insufficient funds")).Once()

		_, err := f.ledger.RequestDeposit(f.as(f.user), f.user, 50, idx)
		require.Error(t, err)

		req, err := f.ledger.DepositRequest(context.Background(), f.hasher.Hash(idx))
		require.NoError(t, err)
		assert.False(t, req.Exists)

		got, err := f.ledger.UserIndex(context.Background(), f.user)
		require.NoError(t, err)
		assert.Empty(t, got)

		assert.Equal(t, before, f.sequence(t))
		assert.Equal(t, []model.EventKind{model.EventLedgerInitialized}, f.publisher.Kinds())
	})

	t.Run("caller must be the depositor", func(t *testing.T) {
		t.Parallel()
		f := newLedgerFixture(t)
		f.initialize(t)

		_, err := f.ledger.RequestDeposit(f.as(f.other), f.user, 10, []byte("idx"))
		require.ErrorIs(t, err, model.ErrUnauthorized)
	})
}

func TestLedger_DepositLifecycle(t *testing.T) {
	t.Parallel()

	f := newLedgerFixture(t)
	f.initialize(t)

	x := index(0xaa)
	f.expectCustody(f.user, 100, x.Bytes())

	requestID, err := f.ledger.RequestDeposit(f.as(f.user), f.user, 100, x.Bytes())
	require.NoError(t, err)
	require.Equal(t, f.hasher.Hash(x.Bytes()), requestID)

	params := model.StoreDepositParams{
		RequestID:          requestID,
		User:               f.user,
		Amount:             100,
		AccountIndex:       x,
		EncryptedAmount:    []byte("ct-amount"),
		EncryptedKeyUser:   []byte("ct-key-user"),
		EncryptedKeyServer: []byte("ct-key-server"),
	}
	require.NoError(t, f.ledger.StoreDeposit(f.as(f.authority), params))

	assert.Equal(t, uint256.NewInt(100), f.supply(t))

	done, err := f.ledger.DepositCompleted(context.Background(), requestID)
	require.NoError(t, err)
	assert.True(t, done)

	balance, err := f.ledger.EncryptedBalance(context.Background(), x)
	require.NoError(t, err)
	assert.True(t, balance.Exists)
	assert.Equal(t, []byte("ct-amount"), balance.EncryptedAmount)
	assert.Equal(t, []byte("ct-key-user"), balance.EncryptedKeyUser)
	assert.Equal(t, []byte("ct-key-server"), balance.EncryptedKeyServer)
	assert.Equal(t, f.clock.Now(), balance.Timestamp)

	t.Run("second fulfillment is rejected without side effects", func(t *testing.T) {
		seq := f.sequence(t)
		again := params
		again.EncryptedAmount = []byte("forged")

		err := f.ledger.StoreDeposit(f.as(f.authority), again)
		require.ErrorIs(t, err, model.ErrAlreadyCompleted)
		assert.ErrorIs(t, err, model.ErrDuplicateFulfillment)

		assert.Equal(t, uint256.NewInt(100), f.supply(t))
		after, err := f.ledger.EncryptedBalance(context.Background(), x)
		require.NoError(t, err)
		assert.Equal(t, balance, after)
		assert.Equal(t, seq, f.sequence(t))
	})

	t.Run("events describe the lifecycle", func(t *testing.T) {
		assert.Equal(t, []model.EventKind{
			model.EventLedgerInitialized,
			model.EventDepositRequested,
			model.EventBalanceStored,
		}, f.publisher.Kinds())

		events, err := f.ledger.ListEvents(context.Background(), 2, 10)
		require.NoError(t, err)
		require.Len(t, events, 1)

		var payload model.BalanceStoredPayload
		require.NoError(t, json.Unmarshal(events[0].Payload, &payload))
		assert.Equal(t, requestID, payload.RequestID)
		assert.Equal(t, f.user, payload.User)
		assert.Equal(t, []byte("ct-amount"), payload.EncryptedAmount)
		assert.Equal(t, []byte("ct-key-user"), payload.EncryptedKeyUser)
		assert.Equal(t, []byte("ct-key-server"), payload.EncryptedKeyServer)
	})
}

func TestLedger_StoreDeposit_SupplyIncreasesByAmount(t *testing.T) {
	t.Parallel()

	amounts := []int64{1, 42, 1_000_000, 1 << 62}

	f := newLedgerFixture(t)
	f.initialize(t)

	for i, amount := range amounts {
		idx := index(byte(i + 1))
		f.expectCustody(f.user, amount, idx.Bytes())

		before := f.supply(t)
		id, err := f.ledger.RequestDeposit(f.as(f.user), f.user, amount, idx.Bytes())
		require.NoError(t, err)

		require.NoError(t, f.ledger.StoreDeposit(f.as(f.authority), model.StoreDepositParams{
			RequestID:    id,
			User:         f.user,
			Amount:       amount,
			AccountIndex: idx,
		}))

		want := new(uint256.Int).Add(before, uint256.NewInt(uint64(amount)))
		assert.Equal(t, want, f.supply(t), "amount %d", amount)
	}
}

func TestLedger_StoreDeposit_ZeroAmount(t *testing.T) {
	t.Parallel()

	f := newLedgerFixture(t)
	f.initialize(t)
	id := f.hasher.Hash([]byte("zero"))

	require.NoError(t, f.ledger.StoreDeposit(f.as(f.authority), model.StoreDepositParams{
		RequestID:       id,
		User:            f.user,
		Amount:          0,
		AccountIndex:    index(1),
		EncryptedAmount: []byte("enc-zero"),
	}))

	assert.True(t, f.supply(t).IsZero())
	done, err := f.ledger.DepositCompleted(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, done)

	balance, err := f.ledger.EncryptedBalance(context.Background(), index(1))
	require.NoError(t, err)
	assert.Equal(t, []byte("enc-zero"), balance.EncryptedAmount)
}

func TestLedger_StoreDeposit_Rejections(t *testing.T) {
	t.Parallel()

	t.Run("caller is not the authority", func(t *testing.T) {
		t.Parallel()
		f := newLedgerFixture(t)
		f.initialize(t)
		id := f.hasher.Hash([]byte("x"))

		err := f.ledger.StoreDeposit(f.as(f.user), model.StoreDepositParams{
			RequestID:    id,
			User:         f.user,
			Amount:       10,
			AccountIndex: index(1),
		})
		require.ErrorIs(t, err, model.ErrUnauthorized)

		done, err := f.ledger.DepositCompleted(context.Background(), id)
		require.NoError(t, err)
		assert.False(t, done)
		assert.True(t, f.supply(t).IsZero())
	})

	t.Run("authority is checked before the amount", func(t *testing.T) {
		t.Parallel()

		for _, amount := range []int64{0, -1} {
			f := newLedgerFixture(t)
			f.initialize(t)

			err := f.ledger.StoreDeposit(f.as(f.user), model.StoreDepositParams{Amount: amount})
			require.ErrorIs(t, err, model.ErrUnauthorized, "amount %d", amount)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		t.Parallel()
		f := newLedgerFixture(t)
		f.initialize(t)

		err := f.ledger.StoreDeposit(f.as(f.authority), model.StoreDepositParams{Amount: -1})
		require.ErrorIs(t, err, model.ErrInvalidAmount)
	})

	t.Run("supply overflow fails closed", func(t *testing.T) {
		t.Parallel()
		f := newLedgerFixture(t)
		f.initialize(t)

		ceiling := new(uint256.Int).SetAllOne()
		require.NoError(t, f.store.Update(context.Background(), func(tx model.LedgerTx) error {
			return tx.SetSupply(context.Background(), ceiling)
		}))

		id := f.hasher.Hash([]byte("x"))
		err := f.ledger.StoreDeposit(f.as(f.authority), model.StoreDepositParams{
			RequestID:    id,
			User:         f.user,
			Amount:       1,
			AccountIndex: index(1),
		})
		require.ErrorIs(t, err, model.ErrSupplyOverflow)

		assert.Equal(t, ceiling, f.supply(t))
		done, err := f.ledger.DepositCompleted(context.Background(), id)
		require.NoError(t, err)
		assert.False(t, done)

		balance, err := f.ledger.EncryptedBalance(context.Background(), index(1))
		require.NoError(t, err)
		assert.False(t, balance.Exists)
	})
}

func TestLedger_TransferLifecycle(t *testing.T) {
	t.Parallel()

	f := newLedgerFixture(t)
	f.initialize(t)

	r := []byte("enc-receiver-index")
	m := []byte("enc-amount")

	transferID, err := f.ledger.RequestTransfer(f.as(f.user), f.user, r, m)
	require.NoError(t, err)
	assert.Equal(t, f.hasher.Hash(append(append([]byte{}, r...), m...)), transferID)
	assert.NotEqual(t, f.hasher.Hash(append(append([]byte{}, m...), r...)), transferID)

	req, err := f.ledger.TransferRequest(context.Background(), transferID)
	require.NoError(t, err)
	assert.True(t, req.Exists)
	assert.Equal(t, f.user, req.Sender)
	assert.Equal(t, r, req.EncryptedReceiverIndex)
	assert.Equal(t, m, req.EncryptedAmount)

	sx, rx := index(0x01), index(0x02)
	params := model.ProcessTransferParams{
		TransferID: transferID,
		Sender:     model.BalanceUpdate{Index: sx, EncryptedAmount: []byte("s-amt"), EncryptedKeyUser: []byte("s-ku"), EncryptedKeyServer: []byte("s-ks")},
		Receiver:   model.BalanceUpdate{Index: rx, EncryptedAmount: []byte("r-amt"), EncryptedKeyUser: []byte("r-ku"), EncryptedKeyServer: []byte("r-ks")},
	}

	err = f.ledger.ProcessTransfer(f.as(f.user), params)
	require.ErrorIs(t, err, model.ErrUnauthorized)

	require.NoError(t, f.ledger.ProcessTransfer(f.as(f.authority), params))

	done, err := f.ledger.TransferCompleted(context.Background(), transferID)
	require.NoError(t, err)
	assert.True(t, done)

	for _, tc := range []struct {
		idx    model.AccountIndex
		amount []byte
	}{{sx, []byte("s-amt")}, {rx, []byte("r-amt")}} {
		balance, err := f.ledger.EncryptedBalance(context.Background(), tc.idx)
		require.NoError(t, err)
		assert.True(t, balance.Exists)
		assert.Equal(t, tc.amount, balance.EncryptedAmount)
	}

	assert.True(t, f.supply(t).IsZero())

	err = f.ledger.ProcessTransfer(f.as(f.authority), params)
	require.ErrorIs(t, err, model.ErrAlreadyCompleted)

	assert.Equal(t, []model.EventKind{
		model.EventLedgerInitialized,
		model.EventTransferRequested,
		model.EventTransferProcessed,
	}, f.publisher.Kinds())
}

func TestLedger_ReadsOnAbsentKeys(t *testing.T) {
	t.Parallel()

	f := newLedgerFixture(t)
	f.initialize(t)
	ctx := context.Background()
	id := f.hasher.Hash([]byte("missing"))

	balance, err := f.ledger.EncryptedBalance(ctx, index(0x77))
	require.NoError(t, err)
	assert.False(t, balance.Exists)
	assert.NotNil(t, balance.EncryptedAmount)
	assert.Empty(t, balance.EncryptedAmount)
	assert.Empty(t, balance.EncryptedKeyUser)
	assert.Empty(t, balance.EncryptedKeyServer)
	assert.True(t, balance.Timestamp.IsZero())

	deposit, err := f.ledger.DepositRequest(ctx, id)
	require.NoError(t, err)
	assert.False(t, deposit.Exists)
	assert.Equal(t, id, deposit.RequestID)
	assert.Zero(t, deposit.Amount)

	transfer, err := f.ledger.TransferRequest(ctx, id)
	require.NoError(t, err)
	assert.False(t, transfer.Exists)
	assert.Equal(t, id, transfer.TransferID)

	done, err := f.ledger.DepositCompleted(ctx, id)
	require.NoError(t, err)
	assert.False(t, done)

	done, err = f.ledger.TransferCompleted(ctx, id)
	require.NoError(t, err)
	assert.False(t, done)

	userIndex, err := f.ledger.UserIndex(ctx, f.user)
	require.NoError(t, err)
	assert.NotNil(t, userIndex)
	assert.Empty(t, userIndex)
}

func TestLedger_RequestRetention(t *testing.T) {
	t.Parallel()

	f := newLedgerFixture(t)
	f.initialize(t)
	f.expectCustody(f.user, 3, []byte("idx"))

	depositID, err := f.ledger.RequestDeposit(f.as(f.user), f.user, 3, []byte("idx"))
	require.NoError(t, err)
	transferID, err := f.ledger.RequestTransfer(f.as(f.user), f.user, []byte("r"), []byte("m"))
	require.NoError(t, err)

	f.clock.Advance(testTTL)

	deposit, err := f.ledger.DepositRequest(context.Background(), depositID)
	require.NoError(t, err)
	assert.False(t, deposit.Exists)

	transfer, err := f.ledger.TransferRequest(context.Background(), transferID)
	require.NoError(t, err)
	assert.False(t, transfer.Exists)

	purged, err := f.ledger.PurgeExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), purged)

	// Fulfillment does not depend on the request record.
	require.NoError(t, f.ledger.StoreDeposit(f.as(f.authority), model.StoreDepositParams{
		RequestID:    depositID,
		User:         f.user,
		Amount:       3,
		AccountIndex: index(9),
	}))
	assert.Equal(t, uint256.NewInt(3), f.supply(t))
}

func TestLedger_ListEvents(t *testing.T) {
	t.Parallel()

	f := newLedgerFixture(t)
	f.initialize(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, f.ledger.AuthenticateUser(f.as(f.user), f.user, []byte{byte(i)}))
	}

	tests := []struct {
		name    string
		afterID uint64
		limit   int
		wantIDs []uint64
	}{
		{name: "all", afterID: 0, limit: 0, wantIDs: []uint64{1, 2, 3, 4, 5, 6}},
		{name: "page", afterID: 2, limit: 2, wantIDs: []uint64{3, 4}},
		{name: "tail", afterID: 5, limit: 10, wantIDs: []uint64{6}},
		{name: "past end", afterID: 6, limit: 10, wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			events, err := f.ledger.ListEvents(context.Background(), tt.afterID, tt.limit)
			require.NoError(t, err)

			var ids []uint64
			for _, e := range events {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
