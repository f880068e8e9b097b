package storage

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"
)

// ErrSealed is returned when a stored value cannot be opened with the
// configured passphrase.
var ErrSealed = errors.New("storage: value cannot be unsealed, wrong passphrase or corrupted data")

const (
	saltSize  = 16
	nonceSize = 24
	keySize   = 32

	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// Sealed encrypts values before handing them to the wrapped Store.
// Layout of a sealed value: salt | nonce | secretbox(plaintext).
type Sealed struct {
	inner      Store
	passphrase []byte
}

// NewSealed wraps inner so every value is encrypted with a key derived from passphrase.
func NewSealed(inner Store, passphrase string) (*Sealed, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase is empty")
	}
	return &Sealed{inner: inner, passphrase: []byte(passphrase)}, nil
}

func (s *Sealed) deriveKey(salt []byte) (*[keySize]byte, error) {
	raw, err := scrypt.Key(s.passphrase, salt, scryptN, scryptR, scryptP, keySize)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	var key [keySize]byte
	copy(key[:], raw)
	return &key, nil
}

// Get reads and decrypts the value stored under key.
func (s *Sealed) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(data) < saltSize+nonceSize+secretbox.Overhead {
		return nil, ErrSealed
	}

	salt := data[:saltSize]
	var nonce [nonceSize]byte
	copy(nonce[:], data[saltSize:saltSize+nonceSize])

	k, err := s.deriveKey(salt)
	if err != nil {
		return nil, err
	}

	plain, ok := secretbox.Open(nil, data[saltSize+nonceSize:], &nonce, k)
	if !ok {
		return nil, ErrSealed
	}
	return plain, nil
}

// Put encrypts value with a fresh salt and nonce and stores it.
func (s *Sealed) Put(ctx context.Context, key string, value []byte) error {
	header := make([]byte, saltSize+nonceSize)
	if _, err := rand.Read(header); err != nil {
		return fmt.Errorf("failed to read random bytes: %w", err)
	}

	k, err := s.deriveKey(header[:saltSize])
	if err != nil {
		return err
	}
	var nonce [nonceSize]byte
	copy(nonce[:], header[saltSize:])

	sealed := secretbox.Seal(header, value, &nonce, k)
	return s.inner.Put(ctx, key, sealed)
}

// Close closes the wrapped store.
func (s *Sealed) Close() error {
	return s.inner.Close()
}
