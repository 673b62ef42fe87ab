package model

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/holiman/uint256"
)

// HashLength is the size of derived request and transfer identifiers.
const HashLength = 32

// Hash is a fixed-size identifier derived from request payloads.
type Hash [HashLength]byte

// Hex returns the 0x-prefixed hex form of the hash.
func (h Hash) Hex() string {
	return "0x" + hex.EncodeToString(h[:])
}

// String implements fmt.Stringer.
func (h Hash) String() string {
	return h.Hex()
}

// Bytes returns a copy of the hash as a byte slice.
func (h Hash) Bytes() []byte {
	b := make([]byte, HashLength)
	copy(b, h[:])
	return b
}

// MarshalText encodes the hash as 0x-prefixed hex.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

// UnmarshalText decodes a hex hash with or without 0x prefix.
func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := ParseHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// ParseHash decodes a 32-byte hex string, with or without 0x prefix.
func ParseHash(s string) (Hash, error) {
	var h Hash
	b, err := decodeHex(s)
	if err != nil {
		return h, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	if len(b) != HashLength {
		return h, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidID, HashLength, len(b))
	}
	copy(h[:], b)
	return h, nil
}

// HashFromBytes converts a 32-byte slice into a Hash.
func HashFromBytes(b []byte) (Hash, error) {
	var h Hash
	if len(b) != HashLength {
		return h, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidID, HashLength, len(b))
	}
	copy(h[:], b)
	return h, nil
}

// AccountIndex is the opaque handle a balance record is keyed by. It decouples
// the balance from the public identity of its owner.
type AccountIndex = Hash

// ParseAccountIndex decodes a hex account index.
func ParseAccountIndex(s string) (AccountIndex, error) {
	var idx AccountIndex
	b, err := decodeHex(s)
	if err != nil || len(b) != HashLength {
		return idx, fmt.Errorf("%w: %q", ErrInvalidIndex, s)
	}
	copy(idx[:], b)
	return idx, nil
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return hex.DecodeString(s)
}

// DecodeHex decodes a 0x-prefixed or bare hex string into raw bytes.
func DecodeHex(s string) ([]byte, error) {
	return decodeHex(s)
}

// EncodeHex encodes bytes as 0x-prefixed hex.
func EncodeHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// Address is the public identity of a ledger participant.
type Address string

// String implements fmt.Stringer.
func (a Address) String() string {
	return string(a)
}

// LedgerConfig is the singleton configuration written once at initialization.
type LedgerConfig struct {
	Authority      Address
	CustodyAsset   string
	CustodyAccount string
	InitializedAt  time.Time
}

// EncryptedBalance is a ciphertext-only balance entry. The three blobs are
// stored and returned unchanged; Exists distinguishes an absent record from an
// empty one.
type EncryptedBalance struct {
	EncryptedAmount    []byte
	EncryptedKeyUser   []byte
	EncryptedKeyServer []byte
	Timestamp          time.Time
	Exists             bool
}

// DepositRequest is the transient hand-off record for a requested deposit.
// Reads of an absent request yield a zero record with Exists unset.
type DepositRequest struct {
	RequestID      Hash
	User           Address
	Amount         int64
	Timestamp      time.Time
	Ledger         uint64
	EncryptedIndex []byte
	Exists         bool
}

// TransferRequest is the transient statement of intent for a transfer.
type TransferRequest struct {
	TransferID             Hash
	Sender                 Address
	EncryptedReceiverIndex []byte
	EncryptedAmount        []byte
	Timestamp              time.Time
	Ledger                 uint64
	Exists                 bool
}

// BalanceUpdate carries a new encrypted balance computed off-ledger.
type BalanceUpdate struct {
	Index              AccountIndex
	EncryptedAmount    []byte
	EncryptedKeyUser   []byte
	EncryptedKeyServer []byte
}

// StoreDepositParams are the inputs of a deposit fulfillment.
type StoreDepositParams struct {
	RequestID          Hash
	User               Address
	Amount             int64
	AccountIndex       AccountIndex
	EncryptedAmount    []byte
	EncryptedKeyUser   []byte
	EncryptedKeyServer []byte
}

// ProcessTransferParams are the inputs of a transfer fulfillment.
type ProcessTransferParams struct {
	TransferID Hash
	Sender     BalanceUpdate
	Receiver   BalanceUpdate
}

// ZeroSupply returns a fresh zero supply counter.
func ZeroSupply() *uint256.Int {
	return new(uint256.Int)
}

// InitializeParams are the inputs of the one-time ledger initialization.
type InitializeParams struct {
	Authority      Address
	CustodyAsset   string
	CustodyAccount string
}
