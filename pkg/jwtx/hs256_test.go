package jwtx_test

import (
	"testing"
	"time"

	"github.com/opencampus/edutrack/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "edutrack-test"

var testSecret = []byte("unit-test-secret-do-not-reuse")

func TestSignAndVerifyRoundTrip(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	claims := jwtx.NewAccessClaims("user-123", "student", testIssuer, time.Hour, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	verifier := jwtx.NewVerifierHS256(testSecret, testIssuer)
	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.Subject)
	require.Equal(t, "student", got.Role)
	require.Equal(t, testIssuer, got.Issuer)
	require.NotEmpty(t, got.ID, "jti should be populated")
}

func TestEmptySecretRejected(t *testing.T) {
	_, err := jwtx.NewSignerHS256(nil)
	require.Error(t, err)
}

func TestVerifyRejectsMalformed(t *testing.T) {
	verifier := jwtx.NewVerifierHS256(testSecret, testIssuer)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := verifier.Verify(token)
		require.Error(t, err, "token %q should not verify", token)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	token, err := signer.Sign(
		jwtx.NewAccessClaims("user-123", "student", testIssuer, time.Hour, time.Now().UTC()),
	)
	require.NoError(t, err)

	verifier := jwtx.NewVerifierHS256([]byte("some-other-secret"), testIssuer)
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	token, err := signer.Sign(
		jwtx.NewAccessClaims("user-123", "student", "someone-else", time.Hour, time.Now().UTC()),
	)
	require.NoError(t, err)

	verifier := jwtx.NewVerifierHS256(testSecret, testIssuer)
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestVerifyRejectsExpired(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	issued := time.Now().UTC().Add(-2 * time.Hour)
	token, err := signer.Sign(
		jwtx.NewAccessClaims("user-123", "student", testIssuer, time.Hour, issued),
	)
	require.NoError(t, err)

	verifier := jwtx.NewVerifierHS256(testSecret, testIssuer)
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid window", func(t *testing.T) {
		c := jwtx.NewAccessClaims("u", "student", testIssuer, time.Hour, now)
		require.NoError(t, c.ValidateExpiry())
	})

	t.Run("not yet valid", func(t *testing.T) {
		c := jwtx.NewAccessClaims("u", "student", testIssuer, time.Hour, now.Add(time.Hour))
		require.ErrorIs(t, c.ValidateExpiry(), jwtx.ErrNotYetValid)
	})
}
