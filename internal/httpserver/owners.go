package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DanielSantaR/final-web-auth/internal/middleware"
	"github.com/DanielSantaR/final-web-auth/internal/models"
	"github.com/DanielSantaR/final-web-auth/internal/service"
	"github.com/DanielSantaR/final-web-auth/pkg/logging"
)

type OwnerHTTP struct {
	Svc *service.OwnerService
}

func (h *OwnerHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "owner_create")

	var in models.BaseOwner
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	current := middleware.EmployeeFromContext(c)
	owner, err := h.Svc.Create(ctx, in, current.IdentityCard)
	switch {
	case errors.Is(err, service.ErrIdentityCardTaken):
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("The owner with id %s already exists in the system.", in.IdentityCard))
	case err != nil:
		l.Error("create failed", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "The owner could not be created")
	}
	return c.JSON(http.StatusCreated, owner)
}

func (h *OwnerHTTP) Me(c echo.Context) error {
	current := middleware.OwnerFromContext(c)
	owner, err := h.Svc.ByID(c.Request().Context(), current.IdentityCard)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "No owner found")
	}
	return c.JSON(http.StatusOK, owner)
}

func (h *OwnerHTTP) MyVehicles(c echo.Context) error {
	current := middleware.OwnerFromContext(c)
	vehicles, err := h.Svc.Vehicles(c.Request().Context(), current.IdentityCard)
	if err != nil {
		return c.JSON(http.StatusOK, []models.Vehicle{})
	}
	return c.JSON(http.StatusOK, vehicles)
}

func (h *OwnerHTTP) ByID(c echo.Context) error {
	owner, err := h.Svc.ByID(c.Request().Context(), c.Param("owner_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "No owner found")
	}
	return c.JSON(http.StatusOK, owner)
}

func (h *OwnerHTTP) List(c echo.Context) error {
	filter := models.OwnerFilter{
		IdentityCard:     c.QueryParam("identity_card"),
		Names:            c.QueryParam("names"),
		Surnames:         c.QueryParam("surnames"),
		Phone:            c.QueryParam("phone"),
		Email:            c.QueryParam("email"),
		CreationEmployee: c.QueryParam("creation_employee"),
		UpdateEmployee:   c.QueryParam("update_employee"),
		Skip:             intQuery(c, "skip"),
		Limit:            intQuery(c, "limit"),
	}
	owners, err := h.Svc.List(c.Request().Context(), filter)
	if err != nil {
		return c.JSON(http.StatusOK, []models.Owner{})
	}
	return c.JSON(http.StatusOK, owners)
}

func (h *OwnerHTTP) VehiclesByOwner(c echo.Context) error {
	vehicles, err := h.Svc.Vehicles(c.Request().Context(), c.Param("owner_id"))
	if err != nil {
		return c.JSON(http.StatusOK, []models.Vehicle{})
	}
	return c.JSON(http.StatusOK, vehicles)
}

func (h *OwnerHTTP) Update(c echo.Context) error {
	var in models.UpdateOwner
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	current := middleware.EmployeeFromContext(c)
	owner, err := h.Svc.Update(c.Request().Context(), c.Param("owner_id"), in, current.IdentityCard)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "No owner found")
	}
	return c.JSON(http.StatusCreated, owner)
}
