// Package keygen derives the machine-bound signing key and produces and
// verifies HMAC-SHA256 signatures with it.
package keygen

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"

	cn "github.com/tektronix/lib-trial-license-go/constant"
	libErr "github.com/tektronix/lib-trial-license-go/error"
	"github.com/tektronix/lib-trial-license-go/internal/identity"
	"golang.org/x/crypto/hkdf"
)

// MachineKey is the symmetric key derived from the machine identifier.
// It is never persisted.
type MachineKey []byte

// Derive builds the machine key from the provider's identifier. The same
// identifier always yields the same key.
func Derive(p identity.Provider) (MachineKey, error) {
	id, err := p.Identifier()
	if err != nil {
		return nil, err
	}

	key := make([]byte, cn.MachineKeySize)

	r := hkdf.New(sha256.New, []byte(id), nil, []byte(cn.KeyDerivationInfo))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, libErr.NewEnvironmentError("derive machine key", err)
	}

	return key, nil
}

// Sign returns the lowercase hex HMAC-SHA256 of message.
func Sign(key MachineKey, message string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(message))

	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature is the HMAC of message under key.
// Malformed hex is reported as not verified.
func Verify(key MachineKey, signature, message string) bool {
	decoded, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(message))

	return hmac.Equal(decoded, mac.Sum(nil))
}
