package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

const (
	ScopesContextKey = "ScopesContextKey"
	UserIDContextKey = "UserIDContextKey"
)

var errInvalidToken = errors.New("invalid token")

type AuthMiddleware interface {
	ValidateAndExtractJwt() gin.HandlerFunc
	CheckUserPermission(requiredScope string) gin.HandlerFunc
}

type authMiddleware struct {
	secretKey []byte
}

func (a *authMiddleware) verifyToken(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return a.secretKey, nil
	})
	if err != nil || !parsedToken.Valid {
		return nil, fmt.Errorf("AuthMiddleware.verifyToken: %w", errInvalidToken)
	}
	return claims, nil
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
		claims, err := a.verifyToken(header[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid access token"})
			return
		}

		var scopes []string
		if list, ok := claims["scopes"].([]interface{}); ok {
			for _, s := range list {
				if scope, ok := s.(string); ok {
					scopes = append(scopes, scope)
				}
			}
		}
		c.Set(ScopesContextKey, scopes)
		if userID, ok := claims["user_id"].(string); ok {
			c.Set(UserIDContextKey, userID)
		}
		c.Next()
	}
}

func (a *authMiddleware) CheckUserPermission(requiredScope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		scopes := c.GetStringSlice(ScopesContextKey)
		if !slices.Contains(scopes, requiredScope) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Permission denied"})
			return
		}
		c.Next()
	}
}

func NewAuthMiddleware(secretKey string) AuthMiddleware {
	return &authMiddleware{secretKey: []byte(secretKey)}
}
