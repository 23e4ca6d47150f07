package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Point the pepper at a throwaway file so tests never touch a real one.
	pepperPath := filepath.Join(os.TempDir(), "catalog-test-pepper")
	SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func TestHashPasswordProducesPHCFormat(t *testing.T) {
	hash, err := HashPassword("Secret1!")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 6)
	require.Contains(t, parts[3], "m=")
	require.Contains(t, parts[3], "t=")
	require.Contains(t, parts[3], "p=")
	require.NotEmpty(t, parts[4])
	require.NotEmpty(t, parts[5])
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("samepassword")
	require.NoError(t, err)
	h2, err := HashPassword("samepassword")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2, "hashes should differ due to unique salts")
	require.NoError(t, VerifyPassword("samepassword", h1))
	require.NoError(t, VerifyPassword("samepassword", h2))
}

func TestVerifyPasswordRoundTrip(t *testing.T) {
	for _, pw := range []string{
		"password123",
		"P@ssw0rd!#$%^&*()",
		strings.Repeat("a", 100),
		"",
		"   spaces   ",
	} {
		hash, err := HashPassword(pw)
		require.NoError(t, err)
		require.NoError(t, VerifyPassword(pw, hash))
	}
}

func TestVerifyPasswordWrongPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	require.ErrorIs(t, VerifyPassword("wrong-password", hash), ErrPasswordMismatch)
	require.ErrorIs(t, VerifyPassword("", hash), ErrPasswordMismatch)
	require.ErrorIs(t, VerifyPassword("correct-password ", hash), ErrPasswordMismatch)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	for _, bad := range []string{
		"",
		"not-a-hash",
		"$argon2id$v=19$m=19456,t=2,p=1$onlyfourparts",
		"$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA",
	} {
		require.Error(t, VerifyPassword("whatever", bad))
	}
}

func TestCostChangeKeepsOldHashesValid(t *testing.T) {
	hash, err := HashPassword("Secret1!")
	require.NoError(t, err)

	old := activeParams
	SetParams(Params{Memory: 32 * 1024, Iterations: 3, Parallelism: 2})
	t.Cleanup(func() { SetParams(old) })

	// The old hash still verifies with the parameters embedded in it.
	require.NoError(t, VerifyPassword("Secret1!", hash))

	// New hashes carry the new cost.
	newHash, err := HashPassword("Secret1!")
	require.NoError(t, err)
	require.Contains(t, newHash, "m=32768,t=3,p=2")
	require.NoError(t, VerifyPassword("Secret1!", newHash))
}
