package http

import (
	"errors"
	"net/http"
	"strings"

	"renthub/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// AuthMiddleware parses the Bearer token and resolves the acting party.
// Tokens carry a user_id and role claim; both must map onto the domain's
// closed role set before any handler runs.
func AuthMiddleware(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token format")
			}

			token, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid claims")
			}

			actor, err := actorFromClaims(claims)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid identity claims")
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

func actorFromClaims(claims jwt.MapClaims) (kernel.Actor, error) {
	rawUserID, ok := claims["user_id"].(string)
	if !ok {
		return kernel.Actor{}, errors.New("user_id claim missing")
	}
	rawRole, ok := claims["role"].(string)
	if !ok {
		return kernel.Actor{}, errors.New("role claim missing")
	}

	userID, err := kernel.UUIDFromString(rawUserID)
	if err != nil {
		return kernel.Actor{}, err
	}
	role, err := kernel.RoleFromString(rawRole)
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(userID, role)
}

// actorFrom retrieves the authenticated actor placed by AuthMiddleware.
func actorFrom(c echo.Context) (kernel.Actor, error) {
	actor, ok := c.Get(actorContextKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return actor, nil
}
