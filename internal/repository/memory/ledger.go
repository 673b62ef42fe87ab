// Package memory provides an in-process LedgerStore. Updates run against a
// private copy of the state which replaces the live state only on success.
package memory

import (
	"bytes"
	"context"
	"maps"
	"sync"
	"time"

	"github.com/holiman/uint256"

	"github.com/dtroode/cipherledger-server/internal/model"
)

var _ model.LedgerStore = (*LedgerStore)(nil)

type expiring[T any] struct {
	value     T
	expiresAt time.Time
}

type state struct {
	config            *model.LedgerConfig
	supply            *uint256.Int
	sequence          uint64
	userIndexes       map[model.Address][]byte
	balances          map[model.AccountIndex]model.EncryptedBalance
	depositRequests   map[model.Hash]expiring[model.DepositRequest]
	depositCompleted  map[model.Hash]uint64
	transferRequests  map[model.Hash]expiring[model.TransferRequest]
	transferCompleted map[model.Hash]uint64
	events            []model.Event
}

func newState() *state {
	return &state{
		supply:            new(uint256.Int),
		userIndexes:       make(map[model.Address][]byte),
		balances:          make(map[model.AccountIndex]model.EncryptedBalance),
		depositRequests:   make(map[model.Hash]expiring[model.DepositRequest]),
		depositCompleted:  make(map[model.Hash]uint64),
		transferRequests:  make(map[model.Hash]expiring[model.TransferRequest]),
		transferCompleted: make(map[model.Hash]uint64),
	}
}

func (s *state) clone() *state {
	c := &state{
		supply:            new(uint256.Int).Set(s.supply),
		sequence:          s.sequence,
		userIndexes:       maps.Clone(s.userIndexes),
		balances:          maps.Clone(s.balances),
		depositRequests:   maps.Clone(s.depositRequests),
		depositCompleted:  maps.Clone(s.depositCompleted),
		transferRequests:  maps.Clone(s.transferRequests),
		transferCompleted: maps.Clone(s.transferCompleted),
		events:            append([]model.Event(nil), s.events...),
	}
	if s.config != nil {
		cfg := *s.config
		c.config = &cfg
	}
	return c
}

// LedgerStore keeps the ledger in memory.
type LedgerStore struct {
	mu    sync.RWMutex
	state *state
	now   func() time.Time
}

// NewLedgerStore creates an empty store. now decides request expiry; nil means
// time.Now.
func NewLedgerStore(now func() time.Time) *LedgerStore {
	if now == nil {
		now = time.Now
	}
	return &LedgerStore{state: newState(), now: now}
}

// Update runs fn against a copy of the state and commits it when fn succeeds.
func (s *LedgerStore) Update(ctx context.Context, fn func(tx model.LedgerTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	draft := s.state.clone()
	if err := fn(&tx{reader: reader{state: draft, now: s.now}}); err != nil {
		return err
	}

	s.state = draft
	return nil
}

// View runs fn against the committed state.
func (s *LedgerStore) View(ctx context.Context, fn func(r model.LedgerReader) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(&reader{state: s.state, now: s.now})
}

// PurgeExpired drops request records whose retention has elapsed.
func (s *LedgerStore) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var purged int64
	for id, req := range s.state.depositRequests {
		if !now.Before(req.expiresAt) {
			delete(s.state.depositRequests, id)
			purged++
		}
	}
	for id, req := range s.state.transferRequests {
		if !now.Before(req.expiresAt) {
			delete(s.state.transferRequests, id)
			purged++
		}
	}
	return purged, nil
}

type reader struct {
	state *state
	now   func() time.Time
}

func (r *reader) Config(_ context.Context) (model.LedgerConfig, error) {
	if r.state.config == nil {
		return model.LedgerConfig{}, model.ErrNotFound
	}
	return *r.state.config, nil
}

func (r *reader) Supply(_ context.Context) (*uint256.Int, error) {
	return new(uint256.Int).Set(r.state.supply), nil
}

func (r *reader) Sequence(_ context.Context) (uint64, error) {
	return r.state.sequence, nil
}

func (r *reader) UserIndex(_ context.Context, user model.Address) ([]byte, error) {
	idx, ok := r.state.userIndexes[user]
	if !ok {
		return nil, model.ErrNotFound
	}
	return bytes.Clone(idx), nil
}

func (r *reader) Balance(_ context.Context, index model.AccountIndex) (model.EncryptedBalance, error) {
	b, ok := r.state.balances[index]
	if !ok {
		return model.EncryptedBalance{}, model.ErrNotFound
	}
	return copyBalance(b), nil
}

func (r *reader) DepositRequest(_ context.Context, requestID model.Hash) (model.DepositRequest, error) {
	req, ok := r.state.depositRequests[requestID]
	if !ok || !r.now().Before(req.expiresAt) {
		return model.DepositRequest{}, model.ErrNotFound
	}
	out := req.value
	out.EncryptedIndex = bytes.Clone(out.EncryptedIndex)
	return out, nil
}

func (r *reader) DepositCompleted(_ context.Context, requestID model.Hash) (bool, error) {
	_, ok := r.state.depositCompleted[requestID]
	return ok, nil
}

func (r *reader) TransferRequest(_ context.Context, transferID model.Hash) (model.TransferRequest, error) {
	req, ok := r.state.transferRequests[transferID]
	if !ok || !r.now().Before(req.expiresAt) {
		return model.TransferRequest{}, model.ErrNotFound
	}
	out := req.value
	out.EncryptedReceiverIndex = bytes.Clone(out.EncryptedReceiverIndex)
	out.EncryptedAmount = bytes.Clone(out.EncryptedAmount)
	return out, nil
}

func (r *reader) TransferCompleted(_ context.Context, transferID model.Hash) (bool, error) {
	_, ok := r.state.transferCompleted[transferID]
	return ok, nil
}

func (r *reader) Events(_ context.Context, afterID uint64, limit int) ([]model.Event, error) {
	var out []model.Event
	for _, e := range r.state.events {
		if e.ID <= afterID {
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, e)
	}
	return out, nil
}

type tx struct {
	reader
}

func (t *tx) InitConfig(_ context.Context, cfg model.LedgerConfig) error {
	if t.state.config != nil {
		return model.ErrAlreadyInitialized
	}
	t.state.config = &cfg
	t.state.supply = new(uint256.Int)
	return nil
}

func (t *tx) NextSequence(_ context.Context) (uint64, error) {
	t.state.sequence++
	return t.state.sequence, nil
}

func (t *tx) SetSupply(_ context.Context, supply *uint256.Int) error {
	t.state.supply = new(uint256.Int).Set(supply)
	return nil
}

func (t *tx) SetUserIndex(_ context.Context, user model.Address, index []byte) error {
	t.state.userIndexes[user] = bytes.Clone(index)
	return nil
}

func (t *tx) PutBalance(_ context.Context, index model.AccountIndex, balance model.EncryptedBalance) error {
	t.state.balances[index] = copyBalance(balance)
	return nil
}

func (t *tx) PutDepositRequest(_ context.Context, req model.DepositRequest, expiresAt time.Time) error {
	req.EncryptedIndex = bytes.Clone(req.EncryptedIndex)
	t.state.depositRequests[req.RequestID] = expiring[model.DepositRequest]{value: req, expiresAt: expiresAt}
	return nil
}

func (t *tx) MarkDepositCompleted(_ context.Context, requestID model.Hash, ledger uint64) error {
	t.state.depositCompleted[requestID] = ledger
	return nil
}

func (t *tx) PutTransferRequest(_ context.Context, req model.TransferRequest, expiresAt time.Time) error {
	req.EncryptedReceiverIndex = bytes.Clone(req.EncryptedReceiverIndex)
	req.EncryptedAmount = bytes.Clone(req.EncryptedAmount)
	t.state.transferRequests[req.TransferID] = expiring[model.TransferRequest]{value: req, expiresAt: expiresAt}
	return nil
}

func (t *tx) MarkTransferCompleted(_ context.Context, transferID model.Hash, ledger uint64) error {
	t.state.transferCompleted[transferID] = ledger
	return nil
}

func (t *tx) AppendEvent(_ context.Context, event model.Event) (model.Event, error) {
	var last uint64
	if n := len(t.state.events); n > 0 {
		last = t.state.events[n-1].ID
	}
	event.ID = last + 1
	event.Payload = bytes.Clone(event.Payload)
	t.state.events = append(t.state.events, event)
	return event, nil
}

func copyBalance(b model.EncryptedBalance) model.EncryptedBalance {
	b.EncryptedAmount = bytes.Clone(b.EncryptedAmount)
	b.EncryptedKeyUser = bytes.Clone(b.EncryptedKeyUser)
	b.EncryptedKeyServer = bytes.Clone(b.EncryptedKeyServer)
	return b
}
