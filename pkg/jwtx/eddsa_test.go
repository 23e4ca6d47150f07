package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testIssuer = "catalog-test"

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer, verifier, err := NewEphemeralKeypair(testIssuer)
	require.NoError(t, err)

	claims := NewClaims("acct-1", "a@x.com", "user", testIssuer, time.Minute, time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(token, ".")+1, "compact JWS has three segments")

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "acct-1", got.Subject)
	require.Equal(t, "a@x.com", got.Email)
	require.Equal(t, "user", got.Role)
	require.Equal(t, testIssuer, got.Issuer)
	require.NotEmpty(t, got.ID, "jti must be set")
}

func TestVerifyExpiredToken(t *testing.T) {
	t.Parallel()

	signer, verifier, err := NewEphemeralKeypair(testIssuer)
	require.NoError(t, err)

	claims := NewClaims("acct-1", "a@x.com", "user", testIssuer, time.Minute, time.Now().Add(-2*time.Minute))
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyTamperedToken(t *testing.T) {
	t.Parallel()

	signer, verifier, err := NewEphemeralKeypair(testIssuer)
	require.NoError(t, err)

	token, err := signer.Sign(NewClaims("acct-1", "a@x.com", "user", testIssuer, time.Minute, time.Now()))
	require.NoError(t, err)

	// Flip a byte in the payload segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = verifier.Verify(tampered)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrExpired)
}

func TestVerifyGarbage(t *testing.T) {
	t.Parallel()

	_, verifier, err := NewEphemeralKeypair(testIssuer)
	require.NoError(t, err)

	_, err = verifier.Verify("definitely-not-a-jwt")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestVerifyForeignKey(t *testing.T) {
	t.Parallel()

	signer, _, err := NewEphemeralKeypair(testIssuer)
	require.NoError(t, err)
	_, otherVerifier, err := NewEphemeralKeypair(testIssuer)
	require.NoError(t, err)

	token, err := signer.Sign(NewClaims("acct-1", "a@x.com", "user", testIssuer, time.Minute, time.Now()))
	require.NoError(t, err)

	_, err = otherVerifier.Verify(token)
	require.Error(t, err, "token signed by a different key must not verify")
}

func TestVerifyWrongIssuer(t *testing.T) {
	t.Parallel()

	signer, verifier, err := NewEphemeralKeypair(testIssuer)
	require.NoError(t, err)

	token, err := signer.Sign(NewClaims("acct-1", "a@x.com", "user", "someone-else", time.Minute, time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}
