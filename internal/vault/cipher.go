package vault

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Sealed file layout: SaltSize bytes of salt, then the keyed body.
const (
	SaltSize   = 16
	keySize    = 32
	kdfRounds  = 100000
	SealedExt  = ".protected"
	TempSuffix = ".temp"
)

var ErrSealedTooShort = errors.New("sealed data shorter than salt")

// DeriveKey stretches a password into a body key for the given salt.
func DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, kdfRounds, keySize, sha256.New)
}

// Transform applies the body keystream in place-compatible fashion and
// returns a new slice. Byte i is XORed with key[i%len(key)] and with the low
// byte of its own offset, which makes the transform self-inverse.
func Transform(data, key []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key[i%len(key)] ^ byte(i%256)
	}
	return out
}

// Seal produces salt || body for the given plaintext.
func Seal(password string, plain []byte) ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	key := DeriveKey(password, salt)
	body := Transform(plain, key)
	out := make([]byte, 0, SaltSize+len(body))
	out = append(out, salt...)
	out = append(out, body...)
	return out, nil
}

// Unseal reverses Seal. The password is not verified here; callers check the
// registry's password hash first.
func Unseal(password string, sealed []byte) ([]byte, error) {
	if len(sealed) < SaltSize {
		return nil, ErrSealedTooShort
	}
	salt := sealed[:SaltSize]
	key := DeriveKey(password, salt)
	return Transform(sealed[SaltSize:], key), nil
}

// HashPassword returns the hex SHA-256 digest stored in the registry.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
