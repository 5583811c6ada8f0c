package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "bf284d03-ba65-42d4-a9fe-0d2fbfe61060"

func TestGenAndParseToken(t *testing.T) {
	token, err := GenToken(AuthClaims{
		UserId:      "u-1",
		TenantId:    7,
		Roles:       []string{"admin"},
		Permissions: []string{"sys:user:list"},
	}, []byte(testSecret), "navtree", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserId)
	assert.Equal(t, uint64(7), claims.TenantId)
	assert.Equal(t, []string{"admin"}, claims.Roles)
	assert.Equal(t, []string{"sys:user:list"}, claims.Permissions)
	assert.Equal(t, "navtree", claims.Issuer)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenToken(AuthClaims{UserId: "u-1"}, []byte(testSecret), "navtree", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenToken(AuthClaims{UserId: "u-1"}, []byte(testSecret), "navtree", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "another-secret")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, jwt.ErrTokenExpired))
}
