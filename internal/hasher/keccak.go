// Package hasher derives ledger identifiers from request payloads.
package hasher

import (
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/dtroode/cipherledger-server/internal/model"
)

var _ model.Hasher = Keccak{}

// Keccak hashes the concatenation of its inputs with legacy Keccak-256.
type Keccak struct{}

// NewKeccak creates a Keccak-256 hasher.
func NewKeccak() Keccak {
	return Keccak{}
}

// Hash returns Keccak256(parts[0] || parts[1] || ...). Part boundaries are not
// encoded, so callers must keep the order and the number of parts stable.
func (Keccak) Hash(parts ...[]byte) model.Hash {
	return model.Hash(ethcrypto.Keccak256Hash(parts...))
}
