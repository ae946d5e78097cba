// Package cryptox implements the key derivation and encryption engine:
// PBKDF2 key derivation from a passphrase, a separate salted verification
// hash, and authenticated AES-GCM encryption of the journal document.
//
// The verification hash and the derived key are deliberately independent:
// a leaked verification hash does not reveal the encryption key, an attacker
// would still have to brute-force the passphrase through the slow KDF.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/luismoralesarg/micro-log/internal/common"
)

const (
	// KDFIterations is the PBKDF2 iteration count. Fixed for the lifetime
	// of an account: changing it invalidates previously derived keys.
	KDFIterations = 100_000

	// KeySize produces AES-256 keys.
	KeySize = 32

	// SaltSize is the per-account salt length in bytes.
	SaltSize = 16

	// NonceSize is the AES-GCM nonce length in bytes.
	NonceSize = 12
)

// Key is a derived symmetric key. It lives in memory only, is never
// persisted, and is not re-exportable; callers hold it for the duration
// of an unlocked session and Zero it on lock.
type Key struct {
	raw []byte
}

// Zero wipes the key material. The key is unusable afterwards.
func (k *Key) Zero() {
	if k == nil {
		return
	}
	common.WipeByteArray(k.raw)
	k.raw = nil
}

func (k *Key) valid() bool { return k != nil && len(k.raw) == KeySize }

// DeriveKey derives a symmetric key from a passphrase and a per-account salt
// using PBKDF2-HMAC-SHA256. Deterministic for identical inputs; the same
// passphrase with a different salt yields an unrelated key.
func DeriveKey(passphrase string, salt []byte) *Key {
	raw := pbkdf2.Key([]byte(passphrase), salt, KDFIterations, KeySize, sha256.New)
	return &Key{raw: raw}
}

// GenerateSalt returns a fresh random per-account salt. Generated once at
// account creation and immutable afterwards.
func GenerateSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// HashPassphrase computes the salted verification fingerprint
// base64(sha256(passphrase + base64(salt))). Used only by the passphrase
// gate, never for key derivation.
func HashPassphrase(passphrase string, salt []byte) string {
	sum := sha256.Sum256([]byte(passphrase + base64.StdEncoding.EncodeToString(salt)))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// Encrypt serializes v to JSON and seals it with AES-256-GCM under a fresh
// random nonce. The result is base64(nonce ‖ ciphertext ‖ tag). A new nonce
// is generated on every call, so a nonce is never reused under the same key.
func Encrypt(v any, key *Key) (string, error) {
	if !key.valid() {
		return "", common.ErrNoKey
	}

	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("nonce: %w", err)
	}

	block, err := aes.NewCipher(key.raw)
	if err != nil {
		return "", err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	combined := aesgcm.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(combined), nil
}

// Decrypt reverses Encrypt: splits the nonce off the decoded payload, opens
// the ciphertext, and unmarshals the JSON into v. Any failure — bad encoding,
// wrong key, corrupted ciphertext, or a payload that is not the expected
// serialization — is reported as common.ErrDecryption.
func Decrypt(opaque string, key *Key, v any) error {
	if !key.valid() {
		return common.ErrNoKey
	}

	combined, err := base64.StdEncoding.DecodeString(opaque)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrDecryption, err)
	}
	if len(combined) < NonceSize {
		return fmt.Errorf("%w: payload too short", common.ErrDecryption)
	}
	nonce, ciphertext := combined[:NonceSize], combined[NonceSize:]

	block, err := aes.NewCipher(key.raw)
	if err != nil {
		return err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return err
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrDecryption, err)
	}

	if err := json.Unmarshal(plaintext, v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrDecryption, err)
	}
	return nil
}
