package model

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// EventKind names a ledger notification.
type EventKind string

const (
	EventLedgerInitialized EventKind = "ledger_initialized"
	EventUserAuthenticated EventKind = "user_authenticated"
	EventDepositRequested  EventKind = "deposit_requested"
	EventBalanceStored     EventKind = "balance_stored"
	EventTransferRequested EventKind = "transfer_requested"
	EventTransferProcessed EventKind = "transfer_processed"
)

// Event is a notification emitted by a mutating ledger call. ID is assigned by
// the store when the event is appended and grows monotonically.
type Event struct {
	ID        uint64          `json:"id"`
	Ledger    uint64          `json:"ledger"`
	Kind      EventKind       `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewEvent encodes payload into a not yet persisted event.
func NewEvent(kind EventKind, ledger uint64, at time.Time, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("failed to encode %s payload: %w", kind, err)
	}

	return Event{Ledger: ledger, Kind: kind, Payload: raw, CreatedAt: at}, nil
}

// LedgerInitializedPayload is the payload of EventLedgerInitialized.
type LedgerInitializedPayload struct {
	Authority    Address `json:"authority"`
	CustodyAsset string  `json:"custody_asset"`
}

// UserAuthenticatedPayload is the payload of EventUserAuthenticated.
type UserAuthenticatedPayload struct {
	User           Address `json:"user"`
	EncryptedIndex []byte  `json:"encrypted_index"`
}

// DepositRequestedPayload is the payload of EventDepositRequested. PackedData
// carries the same bytes as EncryptedIndex; both fields stay in the wire shape.
type DepositRequestedPayload struct {
	RequestID      Hash   `json:"request_id"`
	PackedData     []byte `json:"packed_data"`
	EncryptedIndex []byte `json:"encrypted_index"`
}

// BalanceStoredPayload is the payload of EventBalanceStored.
type BalanceStoredPayload struct {
	RequestID          Hash    `json:"request_id"`
	User               Address `json:"user"`
	EncryptedAmount    []byte  `json:"encrypted_amount"`
	EncryptedKeyUser   []byte  `json:"encrypted_key_user"`
	EncryptedKeyServer []byte  `json:"encrypted_key_server"`
}

// TransferRequestedPayload is the payload of EventTransferRequested.
type TransferRequestedPayload struct {
	TransferID             Hash    `json:"transfer_id"`
	Sender                 Address `json:"sender"`
	EncryptedReceiverIndex []byte  `json:"encrypted_receiver_index"`
	EncryptedAmount        []byte  `json:"encrypted_amount"`
}

// TransferProcessedPayload is the payload of EventTransferProcessed.
type TransferProcessedPayload struct {
	TransferID              Hash   `json:"transfer_id"`
	SenderEncryptedAmount   []byte `json:"sender_encrypted_amount"`
	ReceiverEncryptedAmount []byte `json:"receiver_encrypted_amount"`
}

// EventPublisher delivers committed events to live subscribers. Delivery is
// best effort; the persisted event log is authoritative.
type EventPublisher interface {
	Publish(ctx context.Context, events ...Event)
}

// EventSink is a single live destination for committed events.
type EventSink interface {
	Name() string
	Deliver(ctx context.Context, event Event) error
}
