package firebase_test

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/firebase"
)

type fakeAuth struct {
	token *auth.Token
	err   error
}

func (f fakeAuth) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return f.token, f.err
}

func TestVerify_ClaimsPersonalizados(t *testing.T) {
	v := firebase.NewTokenVerifier(fakeAuth{token: &auth.Token{
		UID:    "farm-7",
		Claims: map[string]interface{}{"owner_id": " owner-1 ", "role": "pharmacist"},
	}})

	s, err := v.Verify(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "farm-7", s.UserID)
	assert.Equal(t, "owner-1", s.OwnerID)
	assert.Equal(t, "pharmacist", s.Role)
}

func TestVerify_SinClaims(t *testing.T) {
	v := firebase.NewTokenVerifier(fakeAuth{token: &auth.Token{UID: "owner-1"}})

	s, err := v.Verify(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Empty(t, s.OwnerID)
	assert.Empty(t, s.Role)
}

func TestVerify_TokenInvalido(t *testing.T) {
	v := firebase.NewTokenVerifier(fakeAuth{err: errors.New("expirado")})
	_, err := v.Verify(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	v = firebase.NewTokenVerifier(fakeAuth{token: &auth.Token{UID: " "}})
	_, err = v.Verify(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
