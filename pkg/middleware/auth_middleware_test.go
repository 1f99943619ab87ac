package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

type stubVerifier struct {
	claims jwt.MapClaims
	err    error
}

func (s stubVerifier) VerifyToken(string) (jwt.MapClaims, error) {
	return s.claims, s.err
}

func TestNewAuthMiddleware(t *testing.T) {
	middleware := NewAuthMiddleware(stubVerifier{})

	assert.NotNil(t, middleware)
	assert.Implements(t, (*AuthMiddleware)(nil), middleware)
}

func TestAuthMiddleware(t *testing.T) {
	validClaims := jwt.MapClaims{"sub": "ops", "scopes": []interface{}{"deployments:read", "deployments:write"}}

	testCases := []struct {
		name           string
		requiredScope  string
		headerValue    string
		verifier       stubVerifier
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			requiredScope:  "deployments:read",
			headerValue:    "Bearer token",
			verifier:       stubVerifier{claims: validClaims},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok"}`,
		},
		{
			name:           "Failure, no header",
			requiredScope:  "deployments:read",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Authorization header is empty"}`,
		},
		{
			name:           "Failure, not a bearer header",
			requiredScope:  "deployments:read",
			headerValue:    "Basic abc",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Authorization header is invalid"}`,
		},
		{
			name:           "Failure, token rejected",
			requiredScope:  "deployments:read",
			headerValue:    "Bearer token",
			verifier:       stubVerifier{err: errors.New("invalid token")},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message":"Invalid access token"}`,
		},
		{
			name:           "Failure, missing scope",
			requiredScope:  "admin:all",
			headerValue:    "Bearer token",
			verifier:       stubVerifier{claims: validClaims},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"message":"Permission denied"}`,
		},
		{
			name:           "Failure, token without scopes",
			requiredScope:  "deployments:read",
			headerValue:    "Bearer token",
			verifier:       stubVerifier{claims: jwt.MapClaims{"sub": "ops"}},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"message":"Permission denied"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)

			w := httptest.NewRecorder()
			_, router := gin.CreateTestContext(w)

			m := NewAuthMiddleware(tc.verifier)

			router.GET("/test", m.ValidateAndExtractJwt(), m.CheckUserPermission(tc.requiredScope), func(ctx *gin.Context) {
				ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tc.headerValue != "" {
				req.Header.Set("Authorization", tc.headerValue)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}
