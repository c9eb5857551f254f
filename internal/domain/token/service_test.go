package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := NewService("")
	require.ErrorIs(t, err, ErrEmptySecret)
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	svc, err := NewService("super-secret")
	require.NoError(t, err)

	tok, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer, err := NewService("right-secret")
	require.NoError(t, err)
	verifier, err := NewService("wrong-secret")
	require.NoError(t, err)

	tok, err := issuer.Issue(7)
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	svc, err := NewService("secret")
	require.NoError(t, err)

	for _, raw := range []string{"", "not.a.jwt", "abc"} {
		_, err := svc.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalid, "token %q", raw)
	}
}

func TestVerify_Tampered(t *testing.T) {
	t.Parallel()

	svc, err := NewService("secret")
	require.NoError(t, err)

	tok, err := svc.Issue(1)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + ".eyJ1c2VyX2lkIjo5OTl9." + parts[2]

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerify_DistinctUsers(t *testing.T) {
	t.Parallel()

	svc, err := NewService("secret")
	require.NoError(t, err)

	tokA, err := svc.Issue(1)
	require.NoError(t, err)
	tokB, err := svc.Issue(2)
	require.NoError(t, err)

	idA, err := svc.Verify(tokA)
	require.NoError(t, err)
	idB, err := svc.Verify(tokB)
	require.NoError(t, err)

	assert.Equal(t, 1, idA)
	assert.Equal(t, 2, idB)
	assert.NotEqual(t, tokA, tokB)
}
