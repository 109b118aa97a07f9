package middleware

import (
	"slices"
	"strings"

	"isdn/internal/delivery/http/response"
	"isdn/internal/domain/entity"
	"isdn/internal/domain/service"
	"isdn/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
	ContextKeyRegion = "region"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
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

		// Set the authenticated identity on the context for handlers to use.
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, claims.Role)
		c.Set(ContextKeyRegion, claims.Region)

		return next(c)
	}
}

// RequireRole is a middleware factory that restricts a route to the given roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok {
				return response.Forbidden(c, "ROLE_MISSING", "Permission denied: role information missing")
			}

			if !slices.Contains(allowed, role) {
				return response.Forbidden(c, "ROLE_FORBIDDEN", "Permission denied for role '"+role.String()+"'")
			}

			return next(c)
		}
	}
}

// ActorFromContext rebuilds the authenticated actor set by Authenticate.
func ActorFromContext(c echo.Context) (usecase.Actor, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)
	if !ok {
		return usecase.Actor{}, false
	}
	role, ok := c.Get(ContextKeyRole).(entity.Role)
	if !ok {
		return usecase.Actor{}, false
	}
	region, _ := c.Get(ContextKeyRegion).(entity.Region)

	return usecase.Actor{UserID: userID, Role: role, Region: region}, true
}
