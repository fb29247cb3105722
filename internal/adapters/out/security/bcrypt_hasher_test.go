package security_test

import (
	"strings"
	"testing"

	"logistics/internal/adapters/out/security"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher, err := security.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("hash_and_compare", func(t *testing.T) {
		hash, err := hasher.Hash("s3cret-pass")

		require.NoError(t, err)
		assert.NotEqual(t, "s3cret-pass", hash)
		assert.NoError(t, hasher.Compare(hash, "s3cret-pass"))
	})

	t.Run("wrong_password", func(t *testing.T) {
		hash, err := hasher.Hash("s3cret-pass")
		require.NoError(t, err)

		err = hasher.Compare(hash, "guess")

		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("malformed_hash", func(t *testing.T) {
		require.ErrorIs(t, hasher.Compare("plain", "plain"), errs.ErrUnauthenticated)
	})

	t.Run("too_long", func(t *testing.T) {
		_, err := hasher.Hash(strings.Repeat("x", 73))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("cost_out_of_range", func(t *testing.T) {
		_, err := security.NewBcryptHasher(bcrypt.MaxCost + 1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
