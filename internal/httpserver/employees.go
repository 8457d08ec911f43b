package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/DanielSantaR/final-web-auth/internal/middleware"
	"github.com/DanielSantaR/final-web-auth/internal/models"
	"github.com/DanielSantaR/final-web-auth/internal/service"
	"github.com/DanielSantaR/final-web-auth/pkg/logging"
)

type EmployeeHTTP struct {
	Svc *service.EmployeeService
}

func (h *EmployeeHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "employee_create")

	var in models.CreateEmployee
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	emp, err := h.Svc.Create(ctx, in)
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		return echo.NewHTTPError(http.StatusBadRequest,
			"The employee with this username already exists in the system.")
	case errors.Is(err, service.ErrIdentityCardTaken):
		return echo.NewHTTPError(http.StatusBadRequest,
			"The employee with this identity card already exists in the system.")
	case err != nil:
		l.Error("create failed", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "The employee could not be created")
	}
	return c.JSON(http.StatusCreated, emp)
}

func (h *EmployeeHTTP) Me(c echo.Context) error {
	current := middleware.EmployeeFromContext(c)
	emp, err := h.Svc.ByID(c.Request().Context(), current.IdentityCard)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "No employee found")
	}
	return c.JSON(http.StatusOK, emp)
}

func (h *EmployeeHTTP) ByID(c echo.Context) error {
	emp, err := h.Svc.ByID(c.Request().Context(), c.Param("employee_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "No employee found")
	}
	return c.JSON(http.StatusOK, emp)
}

func (h *EmployeeHTTP) List(c echo.Context) error {
	filter := models.EmployeeFilter{
		IdentityCard: c.QueryParam("identity_card"),
		Names:        c.QueryParam("names"),
		Surnames:     c.QueryParam("surnames"),
		Phone:        c.QueryParam("phone"),
		Email:        c.QueryParam("email"),
		Username:     c.QueryParam("username"),
		Role:         c.QueryParam("role"),
		IsActive:     boolQuery(c, "is_active"),
		Skip:         intQuery(c, "skip"),
		Limit:        intQuery(c, "limit"),
	}
	employees, err := h.Svc.List(c.Request().Context(), filter)
	if err != nil {
		return c.JSON(http.StatusOK, []models.Employee{})
	}
	return c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHTTP) Update(c echo.Context) error {
	var in models.UpdateEmployee
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	emp, err := h.Svc.Update(c.Request().Context(), c.Param("employee_id"), in)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "No employee found")
	}
	return c.JSON(http.StatusCreated, emp)
}

func boolQuery(c echo.Context, name string) *bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

func intQuery(c echo.Context, name string) *int {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
