package jwt

import (
	"testing"
	"time"

	apperrors "github.com/digirealtydrew93/tackettweb/internal/orchestrator/errors"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

const (
	testSecretKey      = "this-is-a-super-secret-key-for-testing"
	testAccessTokenTTL = 15 * time.Minute
	testSubject        = "ops"
)

func TestUtils_CreateAccessToken(t *testing.T) {
	jwtUtils := NewJwtUtils(testSecretKey, testAccessTokenTTL)
	scopes := []string{ScopeDeploymentsRead, ScopeDeploymentsWrite}

	accessToken, err := jwtUtils.CreateAccessToken(testSubject, scopes...)

	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken.Token)
	assert.Equal(t, testAccessTokenTTL, accessToken.TTL)

	claims, err := jwtUtils.VerifyToken(accessToken.Token)
	assert.NoError(t, err)
	assert.Equal(t, testSubject, claims["sub"])

	scopesClaim, ok := claims["scopes"].([]interface{})
	assert.True(t, ok)
	var scopesFromToken []string
	for _, v := range scopesClaim {
		scopesFromToken = append(scopesFromToken, v.(string))
	}
	assert.ElementsMatch(t, scopes, scopesFromToken)

	expClaim, ok := claims["exp"].(float64)
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(testAccessTokenTTL), time.Unix(int64(expClaim), 0), 5*time.Second)
}

func TestUtils_VerifyToken(t *testing.T) {
	jwtUtils := NewJwtUtils(testSecretKey, testAccessTokenTTL)

	t.Run("Success, Valid token", func(t *testing.T) {
		accessToken, _ := jwtUtils.CreateAccessToken(testSubject)
		claims, err := jwtUtils.VerifyToken(accessToken.Token)
		assert.NoError(t, err)
		assert.NotNil(t, claims)
	})

	t.Run("Error, Invalid signature", func(t *testing.T) {
		otherUtils := NewJwtUtils("another-secret", testAccessTokenTTL)
		accessToken, _ := otherUtils.CreateAccessToken(testSubject)
		_, err := jwtUtils.VerifyToken(accessToken.Token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("Error, Expired token", func(t *testing.T) {
		expiredUtils := NewJwtUtils(testSecretKey, -time.Minute)
		accessToken, _ := expiredUtils.CreateAccessToken(testSubject)
		_, err := jwtUtils.VerifyToken(accessToken.Token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("Error, Unexpected signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": testSubject})
		tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		assert.NoError(t, err)
		_, err = jwtUtils.VerifyToken(tokenString)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("Error, Malformed token", func(t *testing.T) {
		_, err := jwtUtils.VerifyToken("not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}
