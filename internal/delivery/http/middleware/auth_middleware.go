package middleware

import (
	"strings"

	"campusmarket/internal/delivery/http/response"
	"campusmarket/internal/domain/entity"
	"campusmarket/internal/domain/service"
	"campusmarket/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ActorContextKey is the echo context key carrying the resolved actor.
const ActorContextKey = "actor"

// AuthMiddleware validates JWT access tokens and resolves the caller's
// authorization context.
type AuthMiddleware struct {
	tokenSvc  service.TokenService
	profileUC usecase.ProfileUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, profileUC usecase.ProfileUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, profileUC: profileUC}
}

// Authenticate validates the bearer token and loads the actor for the
// request. The actor's role comes from the stored profile, never from
// token claims, so a role change takes effect on the next request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		actor, err := m.profileUC.ResolveActor(c.Request().Context(), claims.UserID)
		if err != nil {
			return err
		}
		actor.Email = claims.Email

		c.Set(ActorContextKey, actor)

		return next(c)
	}
}

// ActorFromContext returns the actor placed on the context by Authenticate.
func ActorFromContext(c echo.Context) (*entity.Actor, bool) {
	actor, ok := c.Get(ActorContextKey).(*entity.Actor)

	return actor, ok
}
