package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/holiman/uint256"

	"github.com/dtroode/cipherledger-server/internal/account"
	"github.com/dtroode/cipherledger-server/internal/logger"
	"github.com/dtroode/cipherledger-server/internal/model"
)

// Ledger implements the deposit and transfer request/fulfillment protocol on
// top of a LedgerStore. Every mutating call runs inside one store update, so it
// either lands completely or leaves no trace.
type Ledger struct {
	store      model.LedgerStore
	hasher     model.Hasher
	gate       model.AuthGate
	custody    model.Custody
	publisher  model.EventPublisher
	requestTTL time.Duration
	now        func() time.Time
	logger     *logger.Logger
}

// LedgerOption customizes a Ledger.
type LedgerOption func(*Ledger)

// WithClock overrides the time source used for timestamps and request expiry.
func WithClock(now func() time.Time) LedgerOption {
	return func(l *Ledger) {
		l.now = now
	}
}

func NewLedger(
	store model.LedgerStore,
	hasher model.Hasher,
	gate model.AuthGate,
	custody model.Custody,
	publisher model.EventPublisher,
	requestTTL time.Duration,
	logger *logger.Logger,
	opts ...LedgerOption,
) *Ledger {
	l := &Ledger{
		store:      store,
		hasher:     hasher,
		gate:       gate,
		custody:    custody,
		publisher:  publisher,
		requestTTL: requestTTL,
		now:        time.Now,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// call carries the per-update context of a mutating operation.
type call struct {
	tx     model.LedgerTx
	config model.LedgerConfig
	ledger uint64
	at     time.Time
	events []model.Event
}

func (c *call) emit(ctx context.Context, kind model.EventKind, payload any) error {
	event, err := model.NewEvent(kind, c.ledger, c.at, payload)
	if err != nil {
		return err
	}

	stored, err := c.tx.AppendEvent(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to append %s event: %w", kind, err)
	}

	c.events = append(c.events, stored)
	return nil
}

// mutate runs fn inside a store update on an initialized ledger and publishes
// the emitted events once the update has committed.
func (s *Ledger) mutate(ctx context.Context, fn func(ctx context.Context, c *call) error) error {
	var events []model.Event

	err := s.store.Update(ctx, func(tx model.LedgerTx) error {
		cfg, err := tx.Config(ctx)
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotInitialized
		}
		if err != nil {
			return fmt.Errorf("failed to get ledger config: %w", err)
		}

		ledger, err := tx.NextSequence(ctx)
		if err != nil {
			return fmt.Errorf("failed to advance ledger sequence: %w", err)
		}

		c := &call{tx: tx, config: cfg, ledger: ledger, at: s.now().UTC()}
		if err := fn(ctx, c); err != nil {
			return err
		}

		events = c.events
		return nil
	})
	if err != nil {
		return err
	}

	s.publisher.Publish(ctx, events...)
	return nil
}

// Initialize writes the ledger configuration once. The caller must be
// authorized as the authority being installed.
func (s *Ledger) Initialize(ctx context.Context, params model.InitializeParams) error {
	if err := validateInitialize(params); err != nil {
		return err
	}

	if err := s.gate.Require(ctx, params.Authority); err != nil {
		return err
	}

	return s.initialize(ctx, params)
}

// Bootstrap initializes the ledger from process configuration without an
// authorized caller. It reports false when the ledger was already initialized.
func (s *Ledger) Bootstrap(ctx context.Context, params model.InitializeParams) (bool, error) {
	if err := validateInitialize(params); err != nil {
		return false, err
	}

	err := s.initialize(ctx, params)
	if errors.Is(err, model.ErrAlreadyInitialized) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func validateInitialize(params model.InitializeParams) error {
	if err := account.Validate(params.Authority); err != nil {
		return err
	}
	if params.CustodyAsset == "" {
		return fmt.Errorf("%w: custody asset is required", model.ErrValidation)
	}
	if params.CustodyAccount == "" {
		return fmt.Errorf("%w: custody account is required", model.ErrValidation)
	}
	return nil
}

func (s *Ledger) initialize(ctx context.Context, params model.InitializeParams) error {
	var events []model.Event

	err := s.store.Update(ctx, func(tx model.LedgerTx) error {
		at := s.now().UTC()
		cfg := model.LedgerConfig{
			Authority:      params.Authority,
			CustodyAsset:   params.CustodyAsset,
			CustodyAccount: params.CustodyAccount,
			InitializedAt:  at,
		}
		if err := tx.InitConfig(ctx, cfg); err != nil {
			return err
		}

		ledger, err := tx.NextSequence(ctx)
		if err != nil {
			return fmt.Errorf("failed to advance ledger sequence: %w", err)
		}

		c := &call{tx: tx, config: cfg, ledger: ledger, at: at}
		if err := c.emit(ctx, model.EventLedgerInitialized, model.LedgerInitializedPayload{
			Authority:    params.Authority,
			CustodyAsset: params.CustodyAsset,
		}); err != nil {
			return err
		}

		events = c.events
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Ledger service: initialized", "authority", params.Authority, "custody_asset", params.CustodyAsset)
	s.publisher.Publish(ctx, events...)
	return nil
}

// AuthenticateUser registers index as the account index of user, replacing any
// previous mapping.
func (s *Ledger) AuthenticateUser(ctx context.Context, user model.Address, index []byte) error {
	if err := s.gate.Require(ctx, user); err != nil {
		return err
	}

	err := s.mutate(ctx, func(ctx context.Context, c *call) error {
		if err := c.tx.SetUserIndex(ctx, user, index); err != nil {
			return fmt.Errorf("failed to set user index: %w", err)
		}

		return c.emit(ctx, model.EventUserAuthenticated, model.UserAuthenticatedPayload{
			User:           user,
			EncryptedIndex: index,
		})
	})
	if err != nil {
		return err
	}

	s.logger.Debug("Ledger service: user authenticated", "user", user)
	return nil
}

// RequestDeposit moves amount of the custody asset from user into custody and
// records a deposit request for the authority to fulfil. The returned ID is
// the hash of index.
//
// The custody transfer runs before the store update so the endpoint is never
// called while the ledger is locked. It carries the request ID as reference;
// a transfer whose request then fails to record is logged with it.
func (s *Ledger) RequestDeposit(ctx context.Context, user model.Address, amount int64, index []byte) (model.Hash, error) {
	if amount <= 0 {
		return model.Hash{}, model.ErrInvalidAmount
	}

	if err := s.gate.Require(ctx, user); err != nil {
		return model.Hash{}, err
	}

	requestID := s.hasher.Hash(index)

	cfg, err := s.Config(ctx)
	if err != nil {
		return model.Hash{}, err
	}

	err = s.custody.Transfer(ctx, model.CustodyTransfer{
		Reference: requestID.Hex(),
		Asset:     cfg.CustodyAsset,
		From:      user.String(),
		To:        cfg.CustodyAccount,
		Amount:    amount,
	})
	if err != nil {
		return model.Hash{}, fmt.Errorf("failed to transfer deposit into custody: %w", err)
	}

	err = s.mutate(ctx, func(ctx context.Context, c *call) error {
		_, err := c.tx.UserIndex(ctx, user)
		if errors.Is(err, model.ErrNotFound) {
			if err := c.tx.SetUserIndex(ctx, user, index); err != nil {
				return fmt.Errorf("failed to set user index: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to get user index: %w", err)
		}

		req := model.DepositRequest{
			RequestID:      requestID,
			User:           user,
			Amount:         amount,
			Timestamp:      c.at,
			Ledger:         c.ledger,
			EncryptedIndex: index,
		}
		if err := c.tx.PutDepositRequest(ctx, req, c.at.Add(s.requestTTL)); err != nil {
			return fmt.Errorf("failed to put deposit request: %w", err)
		}

		return c.emit(ctx, model.EventDepositRequested, model.DepositRequestedPayload{
			RequestID:      requestID,
			PackedData:     index,
			EncryptedIndex: index,
		})
	})
	if err != nil {
		s.logger.Error("Ledger service: deposit moved into custody but not recorded",
			"request_id", requestID, "user", user, "amount", amount, "error", err.Error())
		return model.Hash{}, err
	}

	s.logger.Info("Ledger service: deposit requested", "request_id", requestID, "user", user, "amount", amount)
	return requestID, nil
}

// StoreDeposit fulfils a deposit request: it adds the amount to the supply and
// overwrites the balance at the account index. Only the authority may call it,
// and each request ID is fulfilled at most once.
func (s *Ledger) StoreDeposit(ctx context.Context, params model.StoreDepositParams) error {
	err := s.mutate(ctx, func(ctx context.Context, c *call) error {
		if err := s.gate.Require(ctx, c.config.Authority); err != nil {
			return err
		}
		// Zero is a valid amount; negatives do not fit the unsigned supply.
		if params.Amount < 0 {
			return model.ErrInvalidAmount
		}

		done, err := c.tx.DepositCompleted(ctx, params.RequestID)
		if err != nil {
			return fmt.Errorf("failed to get deposit completion: %w", err)
		}
		if done {
			return fmt.Errorf("deposit %s: %w", params.RequestID, model.ErrAlreadyCompleted)
		}

		supply, err := c.tx.Supply(ctx)
		if err != nil {
			return fmt.Errorf("failed to get supply: %w", err)
		}
		supply, overflow := new(uint256.Int).AddOverflow(supply, uint256.NewInt(uint64(params.Amount)))
		if overflow {
			return model.ErrSupplyOverflow
		}
		if err := c.tx.SetSupply(ctx, supply); err != nil {
			return fmt.Errorf("failed to set supply: %w", err)
		}

		err = c.tx.PutBalance(ctx, params.AccountIndex, model.EncryptedBalance{
			EncryptedAmount:    params.EncryptedAmount,
			EncryptedKeyUser:   params.EncryptedKeyUser,
			EncryptedKeyServer: params.EncryptedKeyServer,
			Timestamp:          c.at,
			Exists:             true,
		})
		if err != nil {
			return fmt.Errorf("failed to put balance: %w", err)
		}

		if err := c.tx.MarkDepositCompleted(ctx, params.RequestID, c.ledger); err != nil {
			return fmt.Errorf("failed to mark deposit completed: %w", err)
		}

		return c.emit(ctx, model.EventBalanceStored, model.BalanceStoredPayload{
			RequestID:          params.RequestID,
			User:               params.User,
			EncryptedAmount:    params.EncryptedAmount,
			EncryptedKeyUser:   params.EncryptedKeyUser,
			EncryptedKeyServer: params.EncryptedKeyServer,
		})
	})
	if err != nil {
		return err
	}

	s.logger.Info("Ledger service: deposit stored", "request_id", params.RequestID, "user", params.User)
	return nil
}

// RequestTransfer records the sender's intent to move an encrypted amount to an
// encrypted receiver index. No balance changes until the authority processes it.
func (s *Ledger) RequestTransfer(ctx context.Context, sender model.Address, encryptedReceiverIndex, encryptedAmount []byte) (model.Hash, error) {
	if err := s.gate.Require(ctx, sender); err != nil {
		return model.Hash{}, err
	}

	transferID := s.hasher.Hash(encryptedReceiverIndex, encryptedAmount)

	err := s.mutate(ctx, func(ctx context.Context, c *call) error {
		req := model.TransferRequest{
			TransferID:             transferID,
			Sender:                 sender,
			EncryptedReceiverIndex: encryptedReceiverIndex,
			EncryptedAmount:        encryptedAmount,
			Timestamp:              c.at,
			Ledger:                 c.ledger,
		}
		if err := c.tx.PutTransferRequest(ctx, req, c.at.Add(s.requestTTL)); err != nil {
			return fmt.Errorf("failed to put transfer request: %w", err)
		}

		return c.emit(ctx, model.EventTransferRequested, model.TransferRequestedPayload{
			TransferID:             transferID,
			Sender:                 sender,
			EncryptedReceiverIndex: encryptedReceiverIndex,
			EncryptedAmount:        encryptedAmount,
		})
	})
	if err != nil {
		return model.Hash{}, err
	}

	s.logger.Info("Ledger service: transfer requested", "transfer_id", transferID, "sender", sender)
	return transferID, nil
}

// ProcessTransfer fulfils a transfer by overwriting the sender and receiver
// balances. Only the authority may call it, and each transfer ID is fulfilled
// at most once.
func (s *Ledger) ProcessTransfer(ctx context.Context, params model.ProcessTransferParams) error {
	err := s.mutate(ctx, func(ctx context.Context, c *call) error {
		if err := s.gate.Require(ctx, c.config.Authority); err != nil {
			return err
		}

		done, err := c.tx.TransferCompleted(ctx, params.TransferID)
		if err != nil {
			return fmt.Errorf("failed to get transfer completion: %w", err)
		}
		if done {
			return fmt.Errorf("transfer %s: %w", params.TransferID, model.ErrAlreadyCompleted)
		}

		for _, update := range []model.BalanceUpdate{params.Sender, params.Receiver} {
			err := c.tx.PutBalance(ctx, update.Index, model.EncryptedBalance{
				EncryptedAmount:    update.EncryptedAmount,
				EncryptedKeyUser:   update.EncryptedKeyUser,
				EncryptedKeyServer: update.EncryptedKeyServer,
				Timestamp:          c.at,
				Exists:             true,
			})
			if err != nil {
				return fmt.Errorf("failed to put balance %s: %w", update.Index, err)
			}
		}

		if err := c.tx.MarkTransferCompleted(ctx, params.TransferID, c.ledger); err != nil {
			return fmt.Errorf("failed to mark transfer completed: %w", err)
		}

		return c.emit(ctx, model.EventTransferProcessed, model.TransferProcessedPayload{
			TransferID:              params.TransferID,
			SenderEncryptedAmount:   params.Sender.EncryptedAmount,
			ReceiverEncryptedAmount: params.Receiver.EncryptedAmount,
		})
	})
	if err != nil {
		return err
	}

	s.logger.Info("Ledger service: transfer processed", "transfer_id", params.TransferID)
	return nil
}

func (s *Ledger) view(ctx context.Context, fn func(r model.LedgerReader) error) error {
	return s.store.View(ctx, fn)
}

// UserIndex returns the index registered for user, or empty bytes.
func (s *Ledger) UserIndex(ctx context.Context, user model.Address) ([]byte, error) {
	index := []byte{}
	err := s.view(ctx, func(r model.LedgerReader) error {
		got, err := r.UserIndex(ctx, user)
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get user index: %w", err)
		}
		index = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return index, nil
}

// EncryptedBalance returns the balance at index. An untouched index yields
// empty blobs with Exists unset.
func (s *Ledger) EncryptedBalance(ctx context.Context, index model.AccountIndex) (model.EncryptedBalance, error) {
	balance := emptyBalance()
	err := s.view(ctx, func(r model.LedgerReader) error {
		got, err := r.Balance(ctx, index)
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get balance: %w", err)
		}
		got.Exists = true
		balance = got
		return nil
	})
	if err != nil {
		return model.EncryptedBalance{}, err
	}
	return balance, nil
}

func emptyBalance() model.EncryptedBalance {
	return model.EncryptedBalance{
		EncryptedAmount:    []byte{},
		EncryptedKeyUser:   []byte{},
		EncryptedKeyServer: []byte{},
	}
}

// DepositRequest returns the pending deposit request. An absent or expired
// request yields a record that echoes requestID with Exists unset.
func (s *Ledger) DepositRequest(ctx context.Context, requestID model.Hash) (model.DepositRequest, error) {
	req := model.DepositRequest{RequestID: requestID, EncryptedIndex: []byte{}}
	err := s.view(ctx, func(r model.LedgerReader) error {
		got, err := r.DepositRequest(ctx, requestID)
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get deposit request: %w", err)
		}
		got.Exists = true
		req = got
		return nil
	})
	if err != nil {
		return model.DepositRequest{}, err
	}
	return req, nil
}

// DepositCompleted reports whether the deposit has been fulfilled.
func (s *Ledger) DepositCompleted(ctx context.Context, requestID model.Hash) (bool, error) {
	var done bool
	err := s.view(ctx, func(r model.LedgerReader) error {
		var err error
		done, err = r.DepositCompleted(ctx, requestID)
		if err != nil {
			return fmt.Errorf("failed to get deposit completion: %w", err)
		}
		return nil
	})
	return done, err
}

// TransferRequest returns the pending transfer request. An absent or expired
// request yields a record that echoes transferID with Exists unset.
func (s *Ledger) TransferRequest(ctx context.Context, transferID model.Hash) (model.TransferRequest, error) {
	req := model.TransferRequest{
		TransferID:             transferID,
		EncryptedReceiverIndex: []byte{},
		EncryptedAmount:        []byte{},
	}
	err := s.view(ctx, func(r model.LedgerReader) error {
		got, err := r.TransferRequest(ctx, transferID)
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get transfer request: %w", err)
		}
		got.Exists = true
		req = got
		return nil
	})
	if err != nil {
		return model.TransferRequest{}, err
	}
	return req, nil
}

// TransferCompleted reports whether the transfer has been fulfilled.
func (s *Ledger) TransferCompleted(ctx context.Context, transferID model.Hash) (bool, error) {
	var done bool
	err := s.view(ctx, func(r model.LedgerReader) error {
		var err error
		done, err = r.TransferCompleted(ctx, transferID)
		if err != nil {
			return fmt.Errorf("failed to get transfer completion: %w", err)
		}
		return nil
	})
	return done, err
}

// EncryptedSupply returns the sum of all fulfilled deposit amounts.
func (s *Ledger) EncryptedSupply(ctx context.Context) (*uint256.Int, error) {
	supply := model.ZeroSupply()
	err := s.view(ctx, func(r model.LedgerReader) error {
		got, err := r.Supply(ctx)
		if err != nil {
			return fmt.Errorf("failed to get supply: %w", err)
		}
		supply = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return supply, nil
}

// Config returns the ledger configuration, or ErrNotInitialized.
func (s *Ledger) Config(ctx context.Context) (model.LedgerConfig, error) {
	var cfg model.LedgerConfig
	err := s.view(ctx, func(r model.LedgerReader) error {
		got, err := r.Config(ctx)
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotInitialized
		}
		if err != nil {
			return fmt.Errorf("failed to get ledger config: %w", err)
		}
		cfg = got
		return nil
	})
	return cfg, err
}

// ServerManager returns the authority address.
func (s *Ledger) ServerManager(ctx context.Context) (model.Address, error) {
	cfg, err := s.Config(ctx)
	if err != nil {
		return "", err
	}
	return cfg.Authority, nil
}

// TokenContract returns the custody asset identifier.
func (s *Ledger) TokenContract(ctx context.Context) (string, error) {
	cfg, err := s.Config(ctx)
	if err != nil {
		return "", err
	}
	return cfg.CustodyAsset, nil
}

// Sequence returns the sequence number of the last committed mutation.
func (s *Ledger) Sequence(ctx context.Context) (uint64, error) {
	var seq uint64
	err := s.view(ctx, func(r model.LedgerReader) error {
		var err error
		seq, err = r.Sequence(ctx)
		if err != nil {
			return fmt.Errorf("failed to get sequence: %w", err)
		}
		return nil
	})
	return seq, err
}

// MaxEventPage bounds a single ListEvents page.
const MaxEventPage = 500

// ListEvents returns committed events with ID greater than afterID, oldest
// first. limit is clamped to (0, MaxEventPage].
func (s *Ledger) ListEvents(ctx context.Context, afterID uint64, limit int) ([]model.Event, error) {
	if limit <= 0 || limit > MaxEventPage {
		limit = MaxEventPage
	}

	var events []model.Event
	err := s.view(ctx, func(r model.LedgerReader) error {
		var err error
		events, err = r.Events(ctx, afterID, limit)
		if err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}
		return nil
	})
	return events, err
}

// PurgeExpired removes request records whose retention elapsed.
func (s *Ledger) PurgeExpired(ctx context.Context) (int64, error) {
	purged, err := s.store.PurgeExpired(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired requests: %w", err)
	}
	if purged > 0 {
		s.logger.Debug("Ledger service: purged expired requests", "count", purged)
	}
	return purged, nil
}
