package attendance

import (
	"time"

	"github.com/naumur/presence-backend-go/internal/domain/user"
)

// EditState carries everything the lifecycle rules need to decide whether
// an arrival or departure edit is allowed. It is deliberately independent
// of full account objects so the rules can be exercised in isolation.
type EditState struct {
	ActorRole user.Role
	// SelfEdit is true when the actor is the target employee editing
	// their own record.
	SelfEdit bool

	Date      time.Time
	Today     time.Time
	StartDate time.Time

	HasArrival   bool
	HasDeparture bool
}

func (s EditState) elevated() bool {
	return user.Elevated(s.ActorRole)
}

// checkDate applies the rules common to both fields: no edits before the
// employee's start date, none in the future, and self-service employees
// may only touch today.
func (s EditState) checkDate() error {
	date, today := DateOnly(s.Date), DateOnly(s.Today)
	if date.Before(DateOnly(s.StartDate)) {
		return ErrBeforeStartDate
	}
	if date.After(today) {
		return ErrFutureDate
	}
	if s.SelfEdit && !s.elevated() && !date.Equal(today) {
		return ErrNotToday
	}
	return nil
}

// CanSetArrival decides whether the actor may set the arrival time.
// A nil result allows the edit. ErrArrivalAlreadySet marks a state
// conflict: the edit is skipped with a warning rather than failed.
func CanSetArrival(s EditState) error {
	if err := s.checkDate(); err != nil {
		return err
	}
	if s.HasArrival && !s.elevated() {
		return ErrArrivalAlreadySet
	}
	return nil
}

// CanSetDeparture decides whether the actor may set the departure time.
// Only elevated actors may record a departure with no arrival on file.
func CanSetDeparture(s EditState) error {
	if err := s.checkDate(); err != nil {
		return err
	}
	if !s.HasArrival && !s.elevated() {
		return ErrDepartureRequiresArrival
	}
	if s.HasDeparture && !s.elevated() {
		return ErrDepartureAlreadySet
	}
	return nil
}

// IsStateConflict reports whether the policy error is an already-set
// field conflict, surfaced to the user as a warning instead of an error.
func IsStateConflict(err error) bool {
	return err == ErrArrivalAlreadySet || err == ErrDepartureAlreadySet
}
