package http

import (
	"fmt"
	"net/http"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// ActorMiddleware authenticates requests with a Bearer JWT and places the
// resulting actor on the request context. The token must be HMAC-signed
// with the given secret and carry the subject (user id) and a "role" claim.
func ActorMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			const prefix = "Bearer "

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, prefix) {
				return unauthorized(c, "missing bearer token")
			}

			token, err := jwt.Parse(strings.TrimPrefix(header, prefix), func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				return unauthorized(c, "invalid token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return unauthorized(c, "invalid token claims")
			}

			subject, err := claims.GetSubject()
			if err != nil {
				return unauthorized(c, "missing subject claim")
			}
			id, err := kernel.UUIDFromString(subject)
			if err != nil {
				return unauthorized(c, "subject is not a valid user id")
			}

			roleClaim, _ := claims["role"].(string)
			role, err := user.RoleFromString(roleClaim)
			if err != nil {
				return unauthorized(c, "missing or invalid role claim")
			}

			c.Set(actorContextKey, services.Actor{ID: id, Role: role})
			return next(c)
		}
	}
}

// actorFrom returns the authenticated actor placed on the context by
// ActorMiddleware.
func actorFrom(c echo.Context) (services.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(services.Actor)
	return actor, ok
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
