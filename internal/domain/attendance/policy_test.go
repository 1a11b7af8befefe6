package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/naumur/presence-backend-go/internal/domain/user"
)

func baseState() EditState {
	return EditState{
		ActorRole: user.RoleEmployee,
		SelfEdit:  true,
		Date:      date(2026, time.January, 7),
		Today:     date(2026, time.January, 7),
		StartDate: date(2026, time.January, 1),
	}
}

func TestCanSetArrivalSelfToday(t *testing.T) {
	state := baseState()
	assert.NoError(t, CanSetArrival(state))
}

func TestCanSetArrivalRejectsFuture(t *testing.T) {
	state := baseState()
	state.Date = date(2026, time.January, 8)
	assert.ErrorIs(t, CanSetArrival(state), ErrFutureDate)

	// Elevated actors are bound by the future rule too
	state.ActorRole = user.RoleAdmin
	state.SelfEdit = false
	assert.ErrorIs(t, CanSetArrival(state), ErrFutureDate)
}

func TestCanSetArrivalRejectsBeforeStartDate(t *testing.T) {
	state := baseState()
	state.StartDate = date(2026, time.January, 10)
	state.Date = date(2026, time.January, 7)
	assert.ErrorIs(t, CanSetArrival(state), ErrBeforeStartDate)
}

func TestCanSetArrivalSelfPastDay(t *testing.T) {
	state := baseState()
	state.Date = date(2026, time.January, 6)
	assert.ErrorIs(t, CanSetArrival(state), ErrNotToday)

	// Supervisors may edit any past day
	state.ActorRole = user.RoleSupervisor
	state.SelfEdit = false
	assert.NoError(t, CanSetArrival(state))
}

func TestCanSetArrivalNoOverwriteForSelf(t *testing.T) {
	state := baseState()
	state.HasArrival = true

	err := CanSetArrival(state)
	assert.ErrorIs(t, err, ErrArrivalAlreadySet)
	assert.True(t, IsStateConflict(err))

	// Elevated actors may overwrite
	state.ActorRole = user.RoleAdmin
	assert.NoError(t, CanSetArrival(state))
}

func TestCanSetDepartureRequiresArrival(t *testing.T) {
	state := baseState()

	err := CanSetDeparture(state)
	assert.ErrorIs(t, err, ErrDepartureRequiresArrival)
	assert.False(t, IsStateConflict(err))

	// With an arrival on file the departure goes through
	state.HasArrival = true
	assert.NoError(t, CanSetDeparture(state))

	// Elevated actors may record a departure with no arrival
	state.HasArrival = false
	state.ActorRole = user.RoleSupervisor
	assert.NoError(t, CanSetDeparture(state))
}

func TestCanSetDepartureNoOverwriteForSelf(t *testing.T) {
	state := baseState()
	state.HasArrival = true
	state.HasDeparture = true

	err := CanSetDeparture(state)
	assert.ErrorIs(t, err, ErrDepartureAlreadySet)
	assert.True(t, IsStateConflict(err))

	state.ActorRole = user.RoleAdmin
	assert.NoError(t, CanSetDeparture(state))
}

func TestSaveDayRequestValidate(t *testing.T) {
	req := SaveDayRequest{Date: "2026-01-07", SetArrival: true}
	assert.NoError(t, req.Validate())

	req = SaveDayRequest{Date: "2026-01-07"}
	assert.Error(t, req.Validate(), "at least one field must be selected")

	req = SaveDayRequest{Date: "07/01/2026", SetArrival: true}
	assert.Error(t, req.Validate())

	req = SaveDayRequest{SetArrival: true}
	assert.Error(t, req.Validate())
}

func TestVerifyRequestValidate(t *testing.T) {
	req := VerifyRequest{}
	assert.Error(t, req.Validate())

	req = VerifyRequest{IDs: []string{"a"}}
	assert.NoError(t, req.Validate())
}
