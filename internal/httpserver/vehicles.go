package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DanielSantaR/final-web-auth/internal/middleware"
	"github.com/DanielSantaR/final-web-auth/internal/models"
	"github.com/DanielSantaR/final-web-auth/internal/service"
	"github.com/DanielSantaR/final-web-auth/pkg/logging"
)

type VehicleHTTP struct {
	Svc *service.VehicleService
}

func (h *VehicleHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "vehicle_create")

	var in models.BaseVehicle
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	current := middleware.EmployeeFromContext(c)
	vehicle, err := h.Svc.Create(ctx, in, current.IdentityCard)
	switch {
	case errors.Is(err, service.ErrPlateTaken):
		return echo.NewHTTPError(http.StatusBadRequest,
			"The vehicle with this plate already exists in the system.")
	case err != nil:
		l.Error("create failed", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "The vehicle could not be created")
	}
	return c.JSON(http.StatusCreated, vehicle)
}

func (h *VehicleHTTP) ByPlate(c echo.Context) error {
	vehicle, err := h.Svc.ByPlate(c.Request().Context(), c.Param("plate"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "No vehicle found")
	}
	return c.JSON(http.StatusOK, vehicle)
}

func (h *VehicleHTTP) List(c echo.Context) error {
	filter := models.VehicleFilter{
		Plate:       c.QueryParam("plate"),
		Brand:       c.QueryParam("brand"),
		Model:       c.QueryParam("model"),
		Color:       c.QueryParam("color"),
		VehicleType: c.QueryParam("vehicle_type"),
		State:       c.QueryParam("state"),
		Skip:        intQuery(c, "skip"),
		Limit:       intQuery(c, "limit"),
	}
	vehicles, err := h.Svc.List(c.Request().Context(), filter)
	if err != nil {
		return c.JSON(http.StatusOK, []models.Vehicle{})
	}
	return c.JSON(http.StatusOK, vehicles)
}

func (h *VehicleHTTP) Update(c echo.Context) error {
	var in models.UpdateVehicle
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	current := middleware.EmployeeFromContext(c)
	vehicle, err := h.Svc.Update(c.Request().Context(), c.Param("plate"), in, current.IdentityCard)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "No vehicle found")
	}
	return c.JSON(http.StatusCreated, vehicle)
}

func (h *VehicleHTTP) AssignOwner(c echo.Context) error {
	assignment, err := h.Svc.AssignOwner(c.Request().Context(), c.Param("plate"), c.Param("owner_id"))
	switch {
	case errors.Is(err, service.ErrAlreadyAssigned):
		return echo.NewHTTPError(http.StatusBadRequest,
			"The vehicle is already assigned to this owner.")
	case err != nil:
		return echo.NewHTTPError(http.StatusNotFound, "The vehicle could not be assigned")
	}
	return c.JSON(http.StatusCreated, assignment)
}

func (h *VehicleHTTP) UnassignOwner(c echo.Context) error {
	if err := h.Svc.UnassignOwner(c.Request().Context(), c.Param("plate"), c.Param("owner_id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "No assignment found")
	}
	return c.NoContent(http.StatusNoContent)
}
