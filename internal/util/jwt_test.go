package util_test

import (
	"testing"
	"time"

	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_RoundTrip(t *testing.T) {
	userID := uuid.New()
	token, err := util.GenerateJWT("secret", userID, time.Hour)
	require.NoError(t, err)

	got, err := util.ValidateJWT("secret", token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWT_Rejects(t *testing.T) {
	userID := uuid.New()

	token, err := util.GenerateJWT("secret", userID, time.Hour)
	require.NoError(t, err)
	_, err = util.ValidateJWT("other-secret", token)
	assert.Error(t, err)

	expired, err := util.GenerateJWT("secret", userID, -time.Minute)
	require.NoError(t, err)
	_, err = util.ValidateJWT("secret", expired)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &util.Claims{UserID: userID.String()})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = util.ValidateJWT("secret", unsigned)
	assert.Error(t, err)

	_, err = util.ValidateJWT("secret", "garbage")
	assert.Error(t, err)
}
