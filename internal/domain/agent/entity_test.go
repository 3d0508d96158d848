package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEmployable(t *testing.T) {
	a := Agent{EmploymentStatus: StatusActive}
	assert.True(t, a.Employable())

	a.EmploymentStatus = StatusSuspended
	assert.False(t, a.Employable())

	a.EmploymentStatus = StatusTerminated
	assert.False(t, a.Employable())
}

func TestTerminate(t *testing.T) {
	a := Agent{EmploymentStatus: StatusActive}
	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	a.Terminate(date, "contract ended")

	assert.Equal(t, StatusTerminated, a.EmploymentStatus)
	assert.Equal(t, date, *a.TerminationDate)
	assert.Equal(t, "contract ended", *a.TerminationReason)
}

func TestFullName(t *testing.T) {
	a := Agent{FirstName: "Jean", LastName: "Baptiste"}
	assert.Equal(t, "Jean Baptiste", a.FullName())
}
