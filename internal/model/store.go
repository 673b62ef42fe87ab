package model

import (
	"context"
	"time"

	"github.com/holiman/uint256"
)

// LedgerStore is the durable key-value capability behind the ledger.
//
// Update runs fn serialized against every other Update: no two calls interleave
// their reads and writes. Writes made through tx become visible only when fn
// returns nil; any error discards all of them.
type LedgerStore interface {
	Update(ctx context.Context, fn func(tx LedgerTx) error) error
	View(ctx context.Context, fn func(r LedgerReader) error) error
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// LedgerReader is the read side of the store. Absent keys yield ErrNotFound,
// except completion lookups which report false.
type LedgerReader interface {
	Config(ctx context.Context) (LedgerConfig, error)
	Supply(ctx context.Context) (*uint256.Int, error)
	Sequence(ctx context.Context) (uint64, error)
	UserIndex(ctx context.Context, user Address) ([]byte, error)
	Balance(ctx context.Context, index AccountIndex) (EncryptedBalance, error)
	DepositRequest(ctx context.Context, requestID Hash) (DepositRequest, error)
	DepositCompleted(ctx context.Context, requestID Hash) (bool, error)
	TransferRequest(ctx context.Context, transferID Hash) (TransferRequest, error)
	TransferCompleted(ctx context.Context, transferID Hash) (bool, error)
	Events(ctx context.Context, afterID uint64, limit int) ([]Event, error)
}

// LedgerTx is the write side of the store, valid only inside Update.
type LedgerTx interface {
	LedgerReader

	// InitConfig writes the singleton configuration with a zero supply.
	// It returns ErrAlreadyInitialized when a configuration exists.
	InitConfig(ctx context.Context, cfg LedgerConfig) error
	// NextSequence advances and returns the ledger sequence.
	NextSequence(ctx context.Context) (uint64, error)
	SetSupply(ctx context.Context, supply *uint256.Int) error
	SetUserIndex(ctx context.Context, user Address, index []byte) error
	PutBalance(ctx context.Context, index AccountIndex, balance EncryptedBalance) error
	PutDepositRequest(ctx context.Context, req DepositRequest, expiresAt time.Time) error
	MarkDepositCompleted(ctx context.Context, requestID Hash, ledger uint64) error
	PutTransferRequest(ctx context.Context, req TransferRequest, expiresAt time.Time) error
	MarkTransferCompleted(ctx context.Context, transferID Hash, ledger uint64) error
	// AppendEvent persists the event and returns it with its assigned ID.
	AppendEvent(ctx context.Context, event Event) (Event, error)
}

// Hasher derives fixed-size identifiers from byte sequences.
type Hasher interface {
	Hash(parts ...[]byte) Hash
}

// AuthGate verifies that the current call is authorized as identity.
type AuthGate interface {
	Require(ctx context.Context, identity Address) error
}

// CustodyTransfer moves raw units of the custody asset between holders.
// Reference ties the transfer to the ledger request that caused it.
type CustodyTransfer struct {
	Reference string
	Asset     string
	From      string
	To        string
	Amount    int64
}

// Custody is the value-custody transfer rail deposits move funds through.
type Custody interface {
	Transfer(ctx context.Context, transfer CustodyTransfer) error
}
