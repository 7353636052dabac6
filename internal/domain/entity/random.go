package entity

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"
)

const (
	alphanumeric      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	upperAlphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// randomString draws n characters uniformly from alphabet using crypto/rand.
func randomString(n int, alphabet string) (string, error) {
	limit := big.NewInt(int64(len(alphabet)))
	out := make([]byte, n)

	for i := range out {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random source")
		}
		out[i] = alphabet[idx.Int64()]
	}

	return string(out), nil
}
