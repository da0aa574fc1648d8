package store

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	apperrors "mfinvestor/internal/errors"
)

const (
	backendSecure = "secure"

	// EncryptionKeySize is the size of the AES-256 key in bytes.
	EncryptionKeySize = 32
	// SaltSize is the size of the salt for key derivation.
	SaltSize = 16
	// NonceSize is the size of the GCM nonce.
	NonceSize = 12
	// PBKDF2Iterations is the number of iterations for key derivation.
	PBKDF2Iterations = 100000

	metaSalt  = "kdf_salt"
	metaCheck = "kdf_check"
	checkText = "mfinvestor"
)

// SecureStore encrypts every value with AES-256-GCM before it reaches SQLite.
// The key is derived from a passphrase and a per-database salt.
type SecureStore struct {
	db  *SQLiteStore
	key []byte
}

// NewSecureStore opens the encrypted store at dbPath. Opening an existing
// store with a different passphrase fails with ErrDecrypt.
func NewSecureStore(dbPath, passphrase string) (*SecureStore, error) {
	if passphrase == "" {
		return nil, apperrors.NewValidationError("passphrase", "", "must not be empty")
	}

	db, err := NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}

	s, err := openSecure(context.Background(), db, passphrase)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// openSecure derives the key and checks it against the stored check value.
// A new store gets its salt and check value in the same transaction, so a
// salt never exists without the check that guards it.
func openSecure(ctx context.Context, db *SQLiteStore, passphrase string) (*SecureStore, error) {
	var s *SecureStore
	err := db.inTx(ctx, "open", func(tx *sql.Tx) error {
		encoded, err := getMeta(ctx, tx, metaSalt)
		if err != nil {
			return err
		}
		check, err := getMeta(ctx, tx, metaCheck)
		if err != nil {
			return err
		}

		switch {
		case encoded == "" && check == "":
			salt := make([]byte, SaltSize)
			if _, err := io.ReadFull(rand.Reader, salt); err != nil {
				return fmt.Errorf("generating salt: %w", err)
			}
			s = &SecureStore{db: db, key: deriveKey(passphrase, salt)}
			sealed, err := s.seal(metaCheck, checkText)
			if err != nil {
				return err
			}
			if err := putMeta(ctx, tx, metaSalt, base64.StdEncoding.EncodeToString(salt)); err != nil {
				return err
			}
			return putMeta(ctx, tx, metaCheck, sealed)

		case encoded == "" || check == "":
			return fmt.Errorf("incomplete key metadata: %w", apperrors.ErrDecrypt)
		}

		salt, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return fmt.Errorf("decoding salt: %w", apperrors.ErrDecrypt)
		}
		s = &SecureStore{db: db, key: deriveKey(passphrase, salt)}
		if plain, err := s.open(metaCheck, check); err != nil || plain != checkText {
			return apperrors.ErrDecrypt
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.NewStorageError(backendSecure, "open", "", err)
	}
	return s, nil
}

// deriveKey derives an encryption key from a password using PBKDF2.
func deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, PBKDF2Iterations, EncryptionKeySize, sha256.New)
}

// seal encrypts value and binds it to key, returning base64(nonce || ciphertext).
func (s *SecureStore) seal(key, value string) (string, error) {
	gcm, err := s.gcm()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	out := gcm.Seal(nonce, nonce, []byte(value), []byte(key))
	return base64.StdEncoding.EncodeToString(out), nil
}

// open reverses seal.
func (s *SecureStore) open(key, sealed string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil || len(data) < NonceSize {
		return "", apperrors.ErrDecrypt
	}

	gcm, err := s.gcm()
	if err != nil {
		return "", err
	}

	plain, err := gcm.Open(nil, data[:NonceSize], data[NonceSize:], []byte(key))
	if err != nil {
		return "", apperrors.ErrDecrypt
	}
	return string(plain), nil
}

func (s *SecureStore) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return gcm, nil
}

// Get decrypts the value stored under key.
func (s *SecureStore) Get(ctx context.Context, key string) (string, error) {
	sealed, err := s.db.Get(ctx, key)
	if err != nil {
		return "", err
	}
	plain, err := s.open(key, sealed)
	if err != nil {
		return "", apperrors.NewStorageError(backendSecure, "get", key, err)
	}
	return plain, nil
}

// Set encrypts and stores value under key.
func (s *SecureStore) Set(ctx context.Context, key, value string) error {
	sealed, err := s.seal(key, value)
	if err != nil {
		return apperrors.NewStorageError(backendSecure, "set", key, err)
	}
	return s.db.Set(ctx, key, sealed)
}

// Delete removes key.
func (s *SecureStore) Delete(ctx context.Context, key string) error {
	return s.db.Delete(ctx, key)
}

// Keys lists all stored keys in order. Keys are not encrypted.
func (s *SecureStore) Keys(ctx context.Context) ([]string, error) {
	return s.db.Keys(ctx)
}

// Close closes the underlying database.
func (s *SecureStore) Close() error {
	return s.db.Close()
}
