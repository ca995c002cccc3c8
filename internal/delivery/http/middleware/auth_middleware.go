package middleware

import (
	"strings"

	deliverycontext "mall/internal/delivery/context"
	"mall/internal/delivery/http/response"
	"mall/internal/domain/entity"
	"mall/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the resolved actor on the
// echo context for handlers to pick up.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		if !claims.Role.IsValid() {
			return response.Unauthorized(c, "INVALID_TOKEN", "Unknown role in token")
		}

		c.Set(string(deliverycontext.KeyActor), entity.Actor{
			AccountID: claims.AccountID,
			Role:      claims.Role,
		})

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the actor's role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: actor information missing")
			}

			if actor.Role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// GetActor returns the authenticated actor stored by Authenticate.
func GetActor(c echo.Context) (entity.Actor, bool) {
	actor, ok := c.Get(string(deliverycontext.KeyActor)).(entity.Actor)

	return actor, ok
}
