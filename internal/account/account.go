// Package account encodes ed25519 identities as ledger addresses.
//
// An address is base58(keyType || publicKey || checksum) where checksum is the
// first four bytes of SHA3-256(keyType || publicKey).
package account

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/dtroode/cipherledger-server/internal/model"
)

const (
	keyTypeED25519 = 0x01
	checksumLength = 4
	addressLength  = 1 + ed25519.PublicKeySize + checksumLength
)

// FromPublicKey returns the address of an ed25519 public key.
func FromPublicKey(pub ed25519.PublicKey) model.Address {
	buf := make([]byte, 0, addressLength)
	buf = append(buf, keyTypeED25519)
	buf = append(buf, pub...)
	buf = append(buf, checksum(buf)...)
	return model.Address(base58.Encode(buf))
}

// PublicKey decodes an address back into its ed25519 public key.
func PublicKey(address model.Address) (ed25519.PublicKey, error) {
	raw, err := base58.Decode(string(address))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidAddress, err)
	}
	if len(raw) != addressLength {
		return nil, fmt.Errorf("%w: unexpected length %d", model.ErrInvalidAddress, len(raw))
	}
	if raw[0] != keyTypeED25519 {
		return nil, fmt.Errorf("%w: unsupported key type %#x", model.ErrInvalidAddress, raw[0])
	}

	body, sum := raw[:addressLength-checksumLength], raw[addressLength-checksumLength:]
	if !bytes.Equal(checksum(body), sum) {
		return nil, fmt.Errorf("%w: checksum mismatch", model.ErrInvalidAddress)
	}

	return ed25519.PublicKey(body[1:]), nil
}

// Validate reports whether address is well formed.
func Validate(address model.Address) error {
	_, err := PublicKey(address)
	return err
}

// Verify checks an ed25519 signature of message made by address.
func Verify(address model.Address, message, signature []byte) error {
	pub, err := PublicKey(address)
	if err != nil {
		return err
	}
	if len(signature) != ed25519.SignatureSize || !ed25519.Verify(pub, message, signature) {
		return model.ErrBadSignature
	}
	return nil
}

// GenerateKey creates a fresh key pair and returns its address.
func GenerateKey(rand io.Reader) (model.Address, ed25519.PrivateKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return FromPublicKey(pub), priv, nil
}

// FromSeed derives the key pair of a 32-byte ed25519 seed.
func FromSeed(seed []byte) (model.Address, ed25519.PrivateKey, error) {
	if len(seed) != ed25519.SeedSize {
		return "", nil, fmt.Errorf("seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return FromPublicKey(priv.Public().(ed25519.PublicKey)), priv, nil
}

// LoginMessage is the byte string a client signs to complete a login.
func LoginMessage(sessionID string, nonce []byte) []byte {
	msg := make([]byte, 0, len(loginDomain)+len(sessionID)+len(nonce))
	msg = append(msg, loginDomain...)
	msg = append(msg, sessionID...)
	msg = append(msg, nonce...)
	return msg
}

const loginDomain = "cipherledger-login:"

func checksum(body []byte) []byte {
	sum := sha3.Sum256(body)
	return sum[:checksumLength]
}
