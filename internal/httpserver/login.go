package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DanielSantaR/final-web-auth/internal/service"
	"github.com/DanielSantaR/final-web-auth/pkg/logging"
)

type LoginHTTP struct {
	Auth *service.AuthService
}

// AccessToken is the OAuth2-style password login for employees. The body
// is a form with username and password.
func (h *LoginHTTP) AccessToken(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "login_access_token")

	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Incorrect username or password")
	}

	token, err := h.Auth.EmployeeLogin(ctx, username, password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusBadRequest, "Incorrect username or password")
	case errors.Is(err, service.ErrInactiveEmployee):
		return echo.NewHTTPError(http.StatusBadRequest, "Inactive employee")
	case err != nil:
		l.Error("login failed", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Incorrect username or password")
	}
	return c.JSON(http.StatusOK, token)
}

// OwnerAccessToken starts the two-step owner login: a one-time code is
// minted and sent to the owner's email. The response is just true.
func (h *LoginHTTP) OwnerAccessToken(c echo.Context) error {
	ctx := c.Request().Context()

	identityCard := c.QueryParam("identity_card")
	if identityCard == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "identity_card is required")
	}

	err := h.Auth.InitiateOwnerLogin(ctx, identityCard)
	switch {
	case errors.Is(err, service.ErrNoOwner):
		return echo.NewHTTPError(http.StatusBadRequest,
			"there is no owner with this document, please contact the workshop staff.")
	case err != nil:
		return echo.NewHTTPError(http.StatusBadRequest,
			"Something went wrong, try again in 5 minutes :(")
	}
	return c.JSON(http.StatusOK, true)
}

// OwnerLogin exchanges a one-time code for its bearer token.
func (h *LoginHTTP) OwnerLogin(c echo.Context) error {
	ctx := c.Request().Context()

	code := c.QueryParam("code")
	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "code is required")
	}

	token, err := h.Auth.ExchangeOwnerCode(ctx, code)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest,
			"Something went wrong, try logging in again :(")
	}
	return c.JSON(http.StatusOK, token)
}
