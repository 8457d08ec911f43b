package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/DanielSantaR/final-web-auth/internal/middleware"
	"github.com/DanielSantaR/final-web-auth/internal/models"
	"github.com/DanielSantaR/final-web-auth/internal/service"
	"github.com/DanielSantaR/final-web-auth/pkg/logging"
)

type ReparationHTTP struct {
	Svc *service.ReparationService
}

func (h *ReparationHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "reparation_create")

	var in models.BaseReparationDetail
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	current := middleware.EmployeeFromContext(c)
	detail, err := h.Svc.Create(ctx, c.Param("plate"), in, current.IdentityCard)
	if err != nil {
		l.Error("create failed", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "The reparation detail could not be created")
	}
	return c.JSON(http.StatusCreated, detail)
}

func (h *ReparationHTTP) ByVehicle(c echo.Context) error {
	details, err := h.Svc.ByVehicle(c.Request().Context(), c.Param("plate"))
	if err != nil {
		return c.JSON(http.StatusOK, []models.ReparationDetail{})
	}
	return c.JSON(http.StatusOK, details)
}

func (h *ReparationHTTP) ByVehicleForOwner(c echo.Context) error {
	current := middleware.OwnerFromContext(c)
	details, err := h.Svc.ByVehicleForOwner(c.Request().Context(), c.Param("plate"), current.IdentityCard)
	if err != nil {
		return c.JSON(http.StatusOK, []models.ReparationDetail{})
	}
	return c.JSON(http.StatusOK, details)
}

func (h *ReparationHTTP) ByID(c echo.Context) error {
	id, err := reparationID(c)
	if err != nil {
		return err
	}
	detail, err := h.Svc.ByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, notFoundDetail(c))
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *ReparationHTTP) Update(c echo.Context) error {
	id, err := reparationID(c)
	if err != nil {
		return err
	}

	var in models.UpdateReparationDetail
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	current := middleware.EmployeeFromContext(c)
	detail, err := h.Svc.Update(c.Request().Context(), id, in, current.IdentityCard)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, notFoundDetail(c))
	}
	return c.JSON(http.StatusCreated, detail)
}

func (h *ReparationHTTP) Delete(c echo.Context) error {
	id, err := reparationID(c)
	if err != nil {
		return err
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, notFoundDetail(c))
	}
	return c.NoContent(http.StatusNoContent)
}

func reparationID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("reparation_id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid reparation id")
	}
	return id, nil
}

func notFoundDetail(c echo.Context) string {
	return fmt.Sprintf("No reparation detail found for the vehicle %s", c.Param("plate"))
}
