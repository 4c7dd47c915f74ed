package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// randomInt returns a uniformly distributed integer in [0, limit) using
// crypto/rand. rand.Int rejection-samples internally, so there is no modulo bias.
func randomInt(limit int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(limit)))
	if err != nil {
		return 0, fmt.Errorf("reading entropy source: %w", err)
	}
	return int(n.Int64()), nil
}

// secureShuffle performs an in-place Fisher-Yates shuffle using crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := randomInt(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
