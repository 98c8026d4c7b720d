package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "jwt-test-secret"

func TestSignParseRoundTrip(t *testing.T) {
	tok, err := SignJWT(testSecret, "u1", "a@b.com", "REALTOR", time.Hour)
	require.NoError(t, err)

	c, err := ParseJWT(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", c.UserID)
	assert.Equal(t, "a@b.com", c.Email)
	assert.Equal(t, "REALTOR", c.Role)
}

func TestParseWrongSecret(t *testing.T) {
	tok, err := SignJWT(testSecret, "u1", "a@b.com", "BUYER", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT("other-secret", tok)
	assert.Error(t, err)
}

func TestParseExpired(t *testing.T) {
	tok, err := SignJWT(testSecret, "u1", "a@b.com", "BUYER", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(testSecret, tok)
	assert.Error(t, err)
}

func TestParseMalformed(t *testing.T) {
	_, err := ParseJWT(testSecret, "not.a.jwt")
	assert.Error(t, err)
}
