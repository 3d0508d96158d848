package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleManager, RoleSupervisor, RoleHR, RoleFinance, RoleOperator} {
		assert.True(t, r.Valid(), string(r))
	}
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}

func TestCanScheduleShifts(t *testing.T) {
	assert.True(t, RoleAdmin.CanScheduleShifts())
	assert.True(t, RoleManager.CanScheduleShifts())
	assert.True(t, RoleSupervisor.CanScheduleShifts())
	assert.False(t, RoleHR.CanScheduleShifts())
	assert.False(t, RoleFinance.CanScheduleShifts())
	assert.False(t, RoleOperator.CanScheduleShifts())
}

func TestCanDeleteShifts(t *testing.T) {
	assert.True(t, RoleAdmin.CanDeleteShifts())
	assert.True(t, RoleManager.CanDeleteShifts())
	assert.False(t, RoleSupervisor.CanDeleteShifts())
	assert.False(t, RoleOperator.CanDeleteShifts())
}
