package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

const (
	JWTClaimsContextKey = "JWTClaimsContextKey"
	SubjectContextKey   = "SubjectContextKey"
)

type TokenVerifier interface {
	VerifyToken(tokenString string) (jwt.MapClaims, error)
}

type AuthMiddleware interface {
	ValidateAndExtractJwt() gin.HandlerFunc
	CheckUserPermission(requiredScope string) gin.HandlerFunc
}

type authMiddleware struct {
	jwt TokenVerifier
}

func (a *authMiddleware) ValidateAndExtractJwt() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header is empty"})
			return
		}
		header := strings.Fields(authHeader)
		if len(header) != 2 || header[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header is invalid"})
			return
		}
		claims, err := a.jwt.VerifyToken(header[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid access token"})
			return
		}
		c.Set(JWTClaimsContextKey, claims)
		if sub, ok := claims["sub"].(string); ok {
			c.Set(SubjectContextKey, sub)
		}
		c.Next()
	}
}

func scopesFromClaims(c *gin.Context) []string {
	claims, ok := c.Value(JWTClaimsContextKey).(jwt.MapClaims)
	if !ok {
		return nil
	}
	scopesList, ok := claims["scopes"].([]interface{})
	if !ok {
		return nil
	}
	scopes := make([]string, 0, len(scopesList))
	for _, scope := range scopesList {
		if s, ok := scope.(string); ok {
			scopes = append(scopes, s)
		}
	}
	return scopes
}

func (a *authMiddleware) CheckUserPermission(requiredScope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !slices.Contains(scopesFromClaims(c), requiredScope) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Permission denied"})
			return
		}
		c.Next()
	}
}

func NewAuthMiddleware(jwt TokenVerifier) AuthMiddleware {
	return &authMiddleware{jwt: jwt}
}
