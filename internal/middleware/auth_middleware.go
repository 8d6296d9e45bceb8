package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"bassMate/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type authError struct {
	Message string `json:"message"`
}

type appClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// AuthMiddleware verifies the Bearer token issued by the identity service
// and puts the authenticated user's ID into the request context. Token
// issuance lives outside this service; we only verify.
func AuthMiddleware(secretKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, authError{Message: "missing authorization header"})
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, authError{Message: "invalid authorization format"})
			}

			claims := &appClaims{}
			token, err := jwt.ParseWithClaims(tokenParts[1], claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secretKey), nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, authError{Message: "invalid token"})
			}

			expAt, err := claims.GetExpirationTime()
			if err != nil || expAt == nil {
				return c.JSON(http.StatusForbidden, authError{Message: "token has no expiration"})
			}
			if time.Now().After(expAt.Time) {
				return c.JSON(http.StatusForbidden, authError{Message: "token expired"})
			}

			userIDUint, err := strconv.ParseUint(claims.UserID, 10, 64)
			if err != nil {
				logger.Error("invalid user id in token", "error", err)
				return c.JSON(http.StatusForbidden, authError{Message: "invalid user id in token"})
			}

			c.Set("user_id", uint(userIDUint))

			return next(c)
		}
	}
}
