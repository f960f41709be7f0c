package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokenGenerator_Roundtrip(t *testing.T) {
	gen := NewJWTTokenGenerator("roundtrip-secret-roundtrip-secret!!!", time.Hour)

	token, expiresAt, err := gen.GenerateAccessToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := gen.ValidateToken(token)
	require.NoError(t, err)

	uid, err := claims.SubjectID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), uid)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWTTokenGenerator_Invalid(t *testing.T) {
	gen := NewJWTTokenGenerator("validation-secret-validation-secret!", time.Hour)

	tests := []struct {
		name  string
		token func() string
		want  error
	}{
		{
			name:  "malformed payload",
			token: func() string { return "aaaa.bbbb.cccc" },
			want:  ErrInvalidToken,
		},
		{
			name:  "empty string",
			token: func() string { return "" },
			want:  ErrInvalidToken,
		},
		{
			name: "wrong signing key",
			token: func() string {
				other := NewJWTTokenGenerator("a-completely-different-signing-key!!", time.Hour)
				tok, _, err := other.GenerateAccessToken(7)
				require.NoError(t, err)
				return tok
			},
			want: ErrInvalidToken,
		},
		{
			name: "expired",
			token: func() string {
				expired := NewJWTTokenGenerator("validation-secret-validation-secret!", -time.Minute)
				tok, _, err := expired.GenerateAccessToken(7)
				require.NoError(t, err)
				return tok
			},
			want: ErrTokenExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gen.ValidateToken(tt.token())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClaims_SubjectID(t *testing.T) {
	c := &Claims{UserID: "123"}
	uid, err := c.SubjectID()
	require.NoError(t, err)
	assert.Equal(t, int64(123), uid)

	c = &Claims{UserID: "not-a-number"}
	_, err = c.SubjectID()
	assert.ErrorIs(t, err, ErrInvalidToken)
}
