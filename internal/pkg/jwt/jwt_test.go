package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	s := New("secret", time.Hour)

	token, err := s.GenerateToken(7, true)
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UserID)
	assert.True(t, claims.IsGuest)
	assert.Equal(t, time.Hour, s.TTL())
}

func TestValidateToken_Rejects(t *testing.T) {
	s := New("secret", time.Hour)

	expired, err := New("secret", -time.Minute).GenerateToken(1, false)
	require.NoError(t, err)

	forged, err := New("other", time.Hour).GenerateToken(1, false)
	require.NoError(t, err)

	noUser, err := s.GenerateToken(0, false)
	require.NoError(t, err)

	none, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, Claims{UserID: 1}).
		SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"expired":  expired,
		"forged":   forged,
		"no user":  noUser,
		"alg none": none,
		"garbage":  "abc.def.ghi",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.ValidateToken(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
