package user

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleSupervisor Role = "supervisor"
	RoleHR         Role = "hr"
	RoleFinance    Role = "finance"
	RoleOperator   Role = "operator"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleSupervisor, RoleHR, RoleFinance, RoleOperator:
		return true
	}
	return false
}

// CanScheduleShifts reports whether the role may create shifts.
func (r Role) CanScheduleShifts() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleSupervisor
}

// CanDeleteShifts reports whether the role may hard-delete shifts.
func (r Role) CanDeleteShifts() bool {
	return r == RoleAdmin || r == RoleManager
}

// Principal identifies the acting user of a request.
type Principal struct {
	UserID string
	Email  string
	Role   Role
}

// PrincipalFromContext extracts the acting user from the verified JWT
// claims placed on the request context by the jwtauth middleware.
func PrincipalFromContext(ctx context.Context) (Principal, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Principal{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Principal{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	roleStr, ok := claims["role"].(string)
	if !ok || !Role(roleStr).Valid() {
		return Principal{}, fmt.Errorf("role claim is missing or invalid")
	}

	email, _ := claims["email"].(string)

	return Principal{UserID: userID, Email: email, Role: Role(roleStr)}, nil
}
