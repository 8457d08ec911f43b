// Package models defines the typed DTOs exchanged with the backend data
// service and with API clients. The gateway persists none of these; every
// record is materialized on demand from the backend and discarded when the
// request completes.
package models

import (
	"net/url"
	"strconv"
	"time"
)

type Role string

const (
	RoleManager    Role = "manager"
	RoleAssistant  Role = "assistant"
	RoleSupervisor Role = "supervisor"
	RoleTechnician Role = "technician"
)

// AllRoles is the full flat role set. Role checks are exact-match: a
// manager does not satisfy a technician-only route.
var AllRoles = []Role{RoleManager, RoleAssistant, RoleSupervisor, RoleTechnician}

func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleAssistant, RoleSupervisor, RoleTechnician:
		return true
	}
	return false
}

type Employee struct {
	IdentityCard string    `json:"identity_card"`
	Names        string    `json:"names"`
	Surnames     string    `json:"surnames"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	IsActive     bool      `json:"is_active"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

// EmployeeAuth is the backend's authentication record: the employee plus
// the bcrypt hash of their password. It never leaves the gateway.
type EmployeeAuth struct {
	Employee
	Password string `json:"password"`
}

type CreateEmployee struct {
	IdentityCard string `json:"identity_card" validate:"required"`
	Names        string `json:"names" validate:"required"`
	Surnames     string `json:"surnames" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Username     string `json:"username" validate:"required"`
	IsActive     bool   `json:"is_active"`
	Role         Role   `json:"role" validate:"required,oneof=manager assistant supervisor technician"`
	Password     string `json:"password" validate:"required,min=8"`
}

type UpdateEmployee struct {
	Names    *string `json:"names,omitempty"`
	Surnames *string `json:"surnames,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
	IsActive *bool   `json:"is_active,omitempty"`
	Role     *Role   `json:"role,omitempty" validate:"omitempty,oneof=manager assistant supervisor technician"`
}

type Owner struct {
	IdentityCard       string    `json:"identity_card"`
	Names              string    `json:"names"`
	Surnames           string    `json:"surnames"`
	Phone              string    `json:"phone"`
	Email              string    `json:"email"`
	CreationEmployeeID string    `json:"creation_employee_id"`
	UpdateEmployeeID   string    `json:"update_employee_id"`
	CreatedAt          time.Time `json:"created_at"`
	LastModified       time.Time `json:"last_modified"`
}

// BaseOwner is what a technician submits; the gateway stamps the audit
// employee references before forwarding.
type BaseOwner struct {
	IdentityCard string `json:"identity_card" validate:"required"`
	Names        string `json:"names" validate:"required"`
	Surnames     string `json:"surnames" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
}

type CreateOwner struct {
	BaseOwner
	CreationEmployeeID string `json:"creation_employee_id"`
	UpdateEmployeeID   string `json:"update_employee_id"`
}

type UpdateOwner struct {
	Names            *string `json:"names,omitempty"`
	Surnames         *string `json:"surnames,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Email            *string `json:"email,omitempty" validate:"omitempty,email"`
	UpdateEmployeeID *string `json:"update_employee_id,omitempty"`
}

type Vehicle struct {
	Plate              string    `json:"plate"`
	Brand              string    `json:"brand"`
	Model              string    `json:"model"`
	Color              string    `json:"color"`
	VehicleType        string    `json:"vehicle_type"`
	State              string    `json:"state"`
	CreationEmployeeID string    `json:"creation_employee_id"`
	UpdateEmployeeID   string    `json:"update_employee_id"`
	CreatedAt          time.Time `json:"created_at"`
	LastModified       time.Time `json:"last_modified"`
}

type BaseVehicle struct {
	Plate       string `json:"plate" validate:"required"`
	Brand       string `json:"brand" validate:"required"`
	Model       string `json:"model" validate:"required"`
	Color       string `json:"color" validate:"required"`
	VehicleType string `json:"vehicle_type" validate:"required"`
	State       string `json:"state" validate:"required"`
}

type CreateVehicle struct {
	BaseVehicle
	CreationEmployeeID string `json:"creation_employee_id"`
	UpdateEmployeeID   string `json:"update_employee_id"`
}

type UpdateVehicle struct {
	Brand            *string `json:"brand,omitempty"`
	Model            *string `json:"model,omitempty"`
	Color            *string `json:"color,omitempty"`
	VehicleType      *string `json:"vehicle_type,omitempty"`
	State            *string `json:"state,omitempty"`
	UpdateEmployeeID *string `json:"update_employee_id,omitempty"`
}

// VehicleXOwner joins a vehicle to one of its owners. The backend owns the
// record; the gateway only creates and deletes it.
type VehicleXOwner struct {
	ID           int64     `json:"id"`
	VehicleID    string    `json:"vehicle_id"`
	OwnerID      string    `json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

type CreateVehicleXOwner struct {
	VehicleID string `json:"vehicle_id" validate:"required"`
	OwnerID   string `json:"owner_id" validate:"required"`
}

type ReparationDetail struct {
	ID           int64     `json:"id"`
	Description  string    `json:"description"`
	Cost         *float64  `json:"cost,omitempty"`
	SpareParts   []string  `json:"spare_parts,omitempty"`
	State        string    `json:"state"`
	EmployeeID   string    `json:"employee_id"`
	VehicleID    string    `json:"vehicle_id"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

type BaseReparationDetail struct {
	Description string   `json:"description" validate:"required"`
	Cost        *float64 `json:"cost,omitempty"`
	SpareParts  []string `json:"spare_parts,omitempty"`
	State       string   `json:"state" validate:"required"`
}

type CreateReparationDetail struct {
	BaseReparationDetail
	EmployeeID string `json:"employee_id"`
	VehicleID  string `json:"vehicle_id"`
}

type UpdateReparationDetail struct {
	Description *string  `json:"description,omitempty"`
	Cost        *float64 `json:"cost,omitempty"`
	SpareParts  []string `json:"spare_parts,omitempty"`
	State       *string  `json:"state,omitempty"`
	EmployeeID  *string  `json:"employee_id,omitempty"`
}

// OwnerCode is a one-time login code persisted remotely, keyed by Code.
// It is consumed exactly once; otherwise it dies with the embedded
// token's own expiry.
type OwnerCode struct {
	Code      string    `json:"code"`
	OwnerID   string    `json:"owner_id"`
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	CreatedAt time.Time `json:"created_at"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type EmployeeFilter struct {
	IdentityCard string
	Names        string
	Surnames     string
	Phone        string
	Email        string
	Username     string
	IsActive     *bool
	Role         string
	Skip         *int
	Limit        *int
}

func (f EmployeeFilter) Values() url.Values {
	v := url.Values{}
	setNonEmpty(v, "identity_card", f.IdentityCard)
	setNonEmpty(v, "names", f.Names)
	setNonEmpty(v, "surnames", f.Surnames)
	setNonEmpty(v, "phone", f.Phone)
	setNonEmpty(v, "email", f.Email)
	setNonEmpty(v, "username", f.Username)
	if f.IsActive != nil {
		v.Set("is_active", strconv.FormatBool(*f.IsActive))
	}
	setNonEmpty(v, "role", f.Role)
	setIntPtr(v, "skip", f.Skip)
	setIntPtr(v, "limit", f.Limit)
	return v
}

type OwnerFilter struct {
	IdentityCard     string
	Names            string
	Surnames         string
	Phone            string
	Email            string
	CreationEmployee string
	UpdateEmployee   string
	Skip             *int
	Limit            *int
}

func (f OwnerFilter) Values() url.Values {
	v := url.Values{}
	setNonEmpty(v, "identity_card", f.IdentityCard)
	setNonEmpty(v, "names", f.Names)
	setNonEmpty(v, "surnames", f.Surnames)
	setNonEmpty(v, "phone", f.Phone)
	setNonEmpty(v, "email", f.Email)
	setNonEmpty(v, "creation_employee", f.CreationEmployee)
	setNonEmpty(v, "update_employee", f.UpdateEmployee)
	setIntPtr(v, "skip", f.Skip)
	setIntPtr(v, "limit", f.Limit)
	return v
}

type VehicleFilter struct {
	Plate       string
	Brand       string
	Model       string
	Color       string
	VehicleType string
	State       string
	Skip        *int
	Limit       *int
}

func (f VehicleFilter) Values() url.Values {
	v := url.Values{}
	setNonEmpty(v, "plate", f.Plate)
	setNonEmpty(v, "brand", f.Brand)
	setNonEmpty(v, "model", f.Model)
	setNonEmpty(v, "color", f.Color)
	setNonEmpty(v, "vehicle_type", f.VehicleType)
	setNonEmpty(v, "state", f.State)
	setIntPtr(v, "skip", f.Skip)
	setIntPtr(v, "limit", f.Limit)
	return v
}

type ReparationDetailFilter struct {
	VehicleID  string
	EmployeeID string
	OwnerID    string
	State      string
	Skip       *int
	Limit      *int
}

func (f ReparationDetailFilter) Values() url.Values {
	v := url.Values{}
	setNonEmpty(v, "vehicle_id", f.VehicleID)
	setNonEmpty(v, "employee_id", f.EmployeeID)
	setNonEmpty(v, "owner_id", f.OwnerID)
	setNonEmpty(v, "state", f.State)
	setIntPtr(v, "skip", f.Skip)
	setIntPtr(v, "limit", f.Limit)
	return v
}

func setNonEmpty(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func setIntPtr(v url.Values, key string, value *int) {
	if value != nil {
		v.Set(key, strconv.Itoa(*value))
	}
}
