package entity

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/lo"
)

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSuper      Role = "SUPER"
	RoleUnitAdmin  Role = "UNIT_ADMIN"
	RoleTechnician Role = "TECHNICIAN"
	RoleUser       Role = "USER"
	RoleStorce     Role = "STORCE"
	RoleStation    Role = "STATION"
)

var Roles = []Role{RoleAdmin, RoleSuper, RoleUnitAdmin, RoleTechnician, RoleUser, RoleStorce, RoleStation}

func (r Role) Valid() bool {
	return lo.Contains(Roles, r)
}

// Global roles see every station regardless of unit.
func (r Role) Global() bool {
	return r == RoleAdmin || r == RoleSuper
}

type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	Unit     *int64 `json:"unit"`
}

func (i Identity) IDString() string {
	return strconv.FormatInt(i.ID, 10)
}

func (i Identity) HasRole(roles ...Role) bool {
	return lo.Contains(roles, i.Role)
}

type SessionClaims struct {
	Identity
	// Scope is empty for session tokens; password tokens never authenticate.
	Scope TokenScope `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

type TokenScope string

const (
	ScopeAccountSetup  TokenScope = "account_setup"
	ScopePasswordReset TokenScope = "password_reset"
)

type PasswordTokenClaims struct {
	UserID   int64      `json:"id"`
	Email    string     `json:"email"`
	Username string     `json:"username"`
	Scope    TokenScope `json:"scope"`
	jwt.RegisteredClaims
}

type Me struct {
	Identity
	Stations []int64 `json:"stations"`
}
