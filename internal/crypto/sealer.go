package crypto

import (
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/argon2"
)

// sealedPrefix marks values written by a Sealer so rows stored before a
// master key was configured are still readable.
const sealedPrefix = "enc:v1:"

// argon2id parameters for passphrase-derived keys.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32

	minPassphraseLen = 12
)

var (
	ErrInvalidMasterKey = errors.New("invalid master key: must be base64 of 32 bytes")
	ErrWeakPassphrase   = errors.New("master passphrase must be at least 12 characters")
)

// Sealer encrypts individual column values with a single master key.
type Sealer struct {
	gcm cipher.AEAD
}

// NewSealer builds a Sealer from a base64-encoded 32-byte key.
func NewSealer(masterKeyBase64 string) (*Sealer, error) {
	key, err := base64.StdEncoding.DecodeString(masterKeyBase64)
	if err != nil || len(key) != 32 {
		return nil, ErrInvalidMasterKey
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return &Sealer{gcm: gcm}, nil
}

// NewSealerFromPassphrase derives the key with argon2id. The salt is fixed
// per application so the same passphrase always opens previously sealed rows.
func NewSealerFromPassphrase(passphrase string) (*Sealer, error) {
	if utf8.RuneCountInString(passphrase) < minPassphraseLen {
		return nil, ErrWeakPassphrase
	}
	gcm, err := newGCM(DeriveKey(passphrase))
	if err != nil {
		return nil, err
	}
	return &Sealer{gcm: gcm}, nil
}

// DeriveKey stretches a passphrase into a 32-byte key.
func DeriveKey(passphrase string) []byte {
	salt := sha256.Sum256([]byte("navio/panic-info/v1"))
	return argon2.IDKey([]byte(passphrase), salt[:16], argonTime, argonMemory, argonThreads, argonKeyLen)
}

// Seal encrypts plaintext. Already sealed values are returned unchanged.
func (s *Sealer) Seal(plaintext string) (string, error) {
	if IsSealed(plaintext) {
		return plaintext, nil
	}
	ct, err := encrypt(s.gcm, plaintext)
	if err != nil {
		return "", err
	}
	return sealedPrefix + ct, nil
}

// Open reverses Seal. Values without the sealed prefix are plaintext and pass through.
func (s *Sealer) Open(value string) (string, error) {
	if !IsSealed(value) {
		return value, nil
	}
	return decrypt(s.gcm, strings.TrimPrefix(value, sealedPrefix))
}

func IsSealed(value string) bool {
	return strings.HasPrefix(value, sealedPrefix)
}

// EncodeKey renders a key in the form NewSealer expects.
func EncodeKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}
