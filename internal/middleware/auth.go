// Package middleware holds the authorization gate: two parallel chains of
// capability checks, one per principal type. Each stage fails fast with
// the status the stage owns: bad token 403, unknown principal 404,
// inactive employee 400, insufficient role 400.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/DanielSantaR/final-web-auth/internal/backend"
	"github.com/DanielSantaR/final-web-auth/internal/models"
	"github.com/DanielSantaR/final-web-auth/internal/tokens"
)

const (
	ctxEmployee = "current_employee"
	ctxOwner    = "current_owner"
)

type AuthGate struct {
	codec   *tokens.Codec
	backend *backend.Client
}

func NewAuthGate(codec *tokens.Codec, client *backend.Client) *AuthGate {
	return &AuthGate{codec: codec, backend: client}
}

// RequireEmployee chains token verification, principal load, the active
// check and role membership. With no roles given, any of the four roles
// passes; otherwise the employee's role must be in the set, exact match.
func (g *AuthGate) RequireEmployee(roles ...models.Role) echo.MiddlewareFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	if len(roles) == 0 {
		for _, r := range models.AllRoles {
			allowed[r] = true
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c)
			if err != nil {
				return err
			}
			sub, err := g.codec.VerifyEmployee(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "Could not validate credentials")
			}
			emp, err := g.backend.EmployeeByID(c.Request().Context(), sub)
			if err != nil {
				return echo.NewHTTPError(http.StatusNotFound, "User not found")
			}
			if !emp.IsActive {
				return echo.NewHTTPError(http.StatusBadRequest, "Inactive employee")
			}
			if !allowed[emp.Role] {
				return echo.NewHTTPError(http.StatusBadRequest, "The user doesn't have enough privileges")
			}
			c.Set(ctxEmployee, emp)
			return next(c)
		}
	}
}

// RequireOwner resolves the owner chain. Owners carry no active flag, so
// the chain stops after the principal load.
func (g *AuthGate) RequireOwner() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c)
			if err != nil {
				return err
			}
			owner, err := g.ResolveOwner(c.Request().Context(), raw)
			if err != nil {
				if err == errOwnerNotFound {
					return echo.NewHTTPError(http.StatusNotFound, "Owner not found")
				}
				return echo.NewHTTPError(http.StatusForbidden, "Could not validate credentials")
			}
			c.Set(ctxOwner, owner)
			return next(c)
		}
	}
}

var errOwnerNotFound = fmt.Errorf("owner not found")

// ResolveOwner verifies an owner token and loads the owner it names. The
// one-time code exchange calls this directly as its defense-in-depth step.
func (g *AuthGate) ResolveOwner(ctx context.Context, token string) (*models.Owner, error) {
	sub, err := g.codec.VerifyOwner(token)
	if err != nil {
		return nil, err
	}
	owner, err := g.backend.OwnerByID(ctx, sub)
	if err != nil {
		return nil, errOwnerNotFound
	}
	return owner, nil
}

func bearerToken(c echo.Context) (string, error) {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", echo.NewHTTPError(http.StatusForbidden, "Could not validate credentials")
	}
	return strings.TrimPrefix(auth, "Bearer "), nil
}

func EmployeeFromContext(c echo.Context) *models.Employee {
	if emp, ok := c.Get(ctxEmployee).(*models.Employee); ok {
		return emp
	}
	return nil
}

func OwnerFromContext(c echo.Context) *models.Owner {
	if owner, ok := c.Get(ctxOwner).(*models.Owner); ok {
		return owner
	}
	return nil
}
