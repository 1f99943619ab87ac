package jwt

import (
	"fmt"
	"time"

	apperrors "github.com/digirealtydrew93/tackettweb/internal/orchestrator/errors"
	"github.com/golang-jwt/jwt"
)

const (
	ScopeDeploymentsRead  = "deployments:read"
	ScopeDeploymentsWrite = "deployments:write"
)

type AccessToken struct {
	Token string
	TTL   time.Duration
}

// Utils issues and verifies the HS256 tokens of the admin API.
type Utils interface {
	CreateAccessToken(subject string, scopes ...string) (AccessToken, error)
	VerifyToken(tokenString string) (jwt.MapClaims, error)
}

type utils struct {
	accessTokenTTL time.Duration
	secretKey      string
}

func (u *utils) CreateAccessToken(subject string, scopes ...string) (AccessToken, error) {
	expireTime := time.Now().Add(u.accessTokenTTL).Unix()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":    subject,
		"scopes": scopes,
		"exp":    expireTime,
	})
	tokenString, err := token.SignedString([]byte(u.secretKey))
	if err != nil {
		return AccessToken{}, fmt.Errorf("jwt.Utils.CreateAccessToken signing token: %w", err)
	}
	return AccessToken{
		Token: tokenString,
		TTL:   u.accessTokenTTL,
	}, nil
}

func (u *utils) VerifyToken(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("jwt.Utils.VerifyToken: %w", apperrors.ErrInvalidToken)
		}
		return []byte(u.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("jwt.Utils.VerifyToken: %w", apperrors.ErrInvalidToken)
	}
	if !parsedToken.Valid {
		return nil, fmt.Errorf("jwt.Utils.VerifyToken: %w", apperrors.ErrInvalidToken)
	}
	return claims, nil
}

func NewJwtUtils(secretKey string, accessTokenTTL time.Duration) Utils {
	return &utils{
		secretKey:      secretKey,
		accessTokenTTL: accessTokenTTL,
	}
}
