package auth

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/dashapp/internal/common"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(42, secret, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := GetUserIDFromToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, int64(42), id)
}

func TestGetUserIDFromToken_Expired(t *testing.T) {
	token, err := GenerateToken(7, secret, -time.Minute)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(token, secret)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGetUserIDFromToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(7, secret, time.Minute)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(token, []byte("other"))
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGetUserIDFromToken_Garbage(t *testing.T) {
	_, err := GetUserIDFromToken("not.a.token", secret)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}
