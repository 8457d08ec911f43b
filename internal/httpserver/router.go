// Package httpserver registers the gateway's inbound API and maps service
// errors onto HTTP responses.
package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/DanielSantaR/final-web-auth/internal/config"
	"github.com/DanielSantaR/final-web-auth/internal/middleware"
	"github.com/DanielSantaR/final-web-auth/internal/models"
)

type Deps struct {
	Config      *config.Config
	Gate        *middleware.AuthGate
	Login       *LoginHTTP
	Employees   *EmployeeHTTP
	Owners      *OwnerHTTP
	Vehicles    *VehicleHTTP
	Reparations *ReparationHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.Validator = NewValidator()
	e.HTTPErrorHandler = errorHandler()

	g := e.Group("/api/v1")

	g.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"name":    d.Config.AppName,
			"version": d.Config.AppVersion,
		})
	})
	g.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	g.POST("/login/access-token", d.Login.AccessToken)
	g.POST("/owners/access-token", d.Login.OwnerAccessToken)
	g.POST("/owners/login", d.Login.OwnerLogin)

	anyEmployee := d.Gate.RequireEmployee()
	assistant := d.Gate.RequireEmployee(models.RoleAssistant)
	technician := d.Gate.RequireEmployee(models.RoleTechnician)
	owner := d.Gate.RequireOwner()

	g.POST("/employees", d.Employees.Create, assistant)
	g.GET("/employees/me", d.Employees.Me, anyEmployee)
	g.GET("/employees/:employee_id", d.Employees.ByID, anyEmployee)
	g.GET("/employees", d.Employees.List, anyEmployee)
	g.PATCH("/employees/:employee_id", d.Employees.Update, assistant)

	g.POST("/owners", d.Owners.Create, technician)
	g.GET("/owners/me", d.Owners.Me, owner)
	g.GET("/owners/me/vehicles", d.Owners.MyVehicles, owner)
	g.GET("/owners/me/vehicles/:plate/reparation-details", d.Reparations.ByVehicleForOwner, owner)
	g.GET("/owners/:owner_id", d.Owners.ByID, anyEmployee)
	g.GET("/owners", d.Owners.List, anyEmployee)
	g.GET("/owners/:owner_id/vehicles", d.Owners.VehiclesByOwner, anyEmployee)
	g.PATCH("/owners/:owner_id", d.Owners.Update, technician)

	g.POST("/vehicles", d.Vehicles.Create, technician)
	g.GET("/vehicles/:plate", d.Vehicles.ByPlate, anyEmployee)
	g.GET("/vehicles", d.Vehicles.List, anyEmployee)
	g.PATCH("/vehicles/:plate", d.Vehicles.Update, technician)
	g.POST("/vehicles/:plate/owners/:owner_id", d.Vehicles.AssignOwner, technician)
	g.DELETE("/vehicles/:plate/owners/:owner_id", d.Vehicles.UnassignOwner, technician)

	g.POST("/vehicles/:plate/reparation-details", d.Reparations.Create, technician)
	g.GET("/vehicles/:plate/reparation-details", d.Reparations.ByVehicle, anyEmployee)
	g.GET("/vehicles/:plate/reparation-details/:reparation_id", d.Reparations.ByID, anyEmployee)
	g.PATCH("/vehicles/:plate/reparation-details/:reparation_id", d.Reparations.Update, technician)
	g.DELETE("/vehicles/:plate/reparation-details/:reparation_id", d.Reparations.Delete, technician)
}

// errorHandler renders every error as {"detail": ...}, the body shape the
// API's clients already depend on.
func errorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		detail := "Internal Server Error"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			detail = fmt.Sprintf("%v", he.Message)
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, echo.Map{"detail": detail})
	}
}

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
