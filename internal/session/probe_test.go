package session

import (
	"github.com/luismoralesarg/micro-log/internal/cryptox"
)

// Small helpers keeping the crypto round-trip assertions in one place.

func encryptProbe(k *cryptox.Key) (string, error) {
	return cryptox.Encrypt(map[string]string{"probe": "value"}, k)
}

func decryptProbe(opaque string, k *cryptox.Key) error {
	var v map[string]string
	return cryptox.Decrypt(opaque, k, &v)
}
