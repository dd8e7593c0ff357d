package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	user := User{ID: "0b7c7f9e-1", Email: "sara@example.com"}

	token, err := GenerateAccessToken(user, "secret", time.Now())
	require.NoError(t, err)

	got, err := ValidateAccessToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestValidateAccessToken_Rejects(t *testing.T) {
	valid, err := GenerateAccessToken(User{ID: "u-1"}, "secret", time.Now())
	require.NoError(t, err)
	expired, err := GenerateAccessToken(User{ID: "u-1"}, "secret", time.Now().Add(-48*time.Hour))
	require.NoError(t, err)
	anonymous, err := GenerateAccessToken(User{}, "secret", time.Now())
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{name: "wrong secret", token: valid, secret: "other"},
		{name: "expired", token: expired, secret: "secret"},
		{name: "no subject", token: anonymous, secret: "secret"},
		{name: "garbage", token: "not-a-jwt", secret: "secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAccessToken(tt.token, tt.secret)
			assert.Error(t, err)
		})
	}
}
