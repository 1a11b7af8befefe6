package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/naumur/presence-backend-go/internal/domain/attendance"
	"github.com/naumur/presence-backend-go/internal/domain/audit"
	"github.com/naumur/presence-backend-go/internal/domain/user"
	auditsvc "github.com/naumur/presence-backend-go/internal/service/audit"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
	recorder       *auditsvc.Recorder
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	recorder *auditsvc.Recorder,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		recorder:       recorder,
		now:            time.Now,
	}
}

func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func toDayResponse(day *attendance.AttendanceDay) *attendance.DayResponse {
	if day == nil {
		return nil
	}
	return &attendance.DayResponse{
		ID:             day.ID,
		UserID:         day.UserID,
		Date:           day.Date.Format("2006-01-02"),
		ArrivalTime:    formatClock(day.ArrivalTime),
		DepartureTime:  formatClock(day.DepartureTime),
		VerifiedBy:     day.VerifiedBy,
		VerifiedByName: day.VerifiedByName,
		VerifiedAt:     formatTimestamp(day.VerifiedAt),
	}
}

// resolveTarget loads the employee whose record is being viewed or
// edited. Non-elevated actors may only target themselves.
func (s *AttendanceServiceImpl) resolveTarget(ctx context.Context, actor user.User, targetUserID string) (user.User, error) {
	if targetUserID == "" || targetUserID == actor.ID {
		return actor, nil
	}
	if !actor.IsElevated() {
		return user.User{}, user.ErrSupervisorAccessRequired
	}
	target, err := s.userRepo.GetByID(ctx, targetUserID)
	if err != nil {
		return user.User{}, err
	}
	return target, nil
}

// GetWeek implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetWeek(ctx context.Context, actorID, targetUserID string, weekStart time.Time) (attendance.WeekViewResponse, error) {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return attendance.WeekViewResponse{}, fmt.Errorf("failed to get actor: %w", err)
	}
	target, err := s.resolveTarget(ctx, actor, targetUserID)
	if err != nil {
		return attendance.WeekViewResponse{}, err
	}

	weekStart = attendance.WeekStart(weekStart)
	weekEnd := weekStart.AddDate(0, 0, 6)
	today := attendance.DateOnly(s.now())

	records, err := s.attendanceRepo.ListByUserAndRange(ctx, target.ID, weekStart, weekEnd)
	if err != nil {
		return attendance.WeekViewResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	byDate := make(map[string]*attendance.AttendanceDay, len(records))
	for i := range records {
		byDate[records[i].Date.Format("2006-01-02")] = &records[i]
	}

	selfEdit := actor.ID == target.ID
	days := make([]attendance.WeekDayView, 0, 7)
	for _, date := range attendance.WeekDays(weekStart) {
		key := date.Format("2006-01-02")
		record := byDate[key]

		state := attendance.EditState{
			ActorRole:    actor.Role,
			SelfEdit:     selfEdit,
			Date:         date,
			Today:        today,
			StartDate:    target.StartDate,
			HasArrival:   record != nil && record.ArrivalTime != nil,
			HasDeparture: record != nil && record.DepartureTime != nil,
		}

		arrivalErr := attendance.CanSetArrival(state)
		departureErr := attendance.CanSetDeparture(state)

		days = append(days, attendance.WeekDayView{
			Date:             key,
			Record:           toDayResponse(record),
			CanEditArrival:   arrivalErr == nil,
			CanEditDeparture: departureErr == nil,
			IsFuture:         date.After(today),
			IsBeforeStart:    date.Before(attendance.DateOnly(target.StartDate)),
			IsLocked:         arrivalErr != nil && departureErr != nil,
		})
	}

	return attendance.WeekViewResponse{
		WeekStart:      weekStart.Format("2006-01-02"),
		WeekEnd:        weekEnd.Format("2006-01-02"),
		PrevWeek:       weekStart.AddDate(0, 0, -7).Format("2006-01-02"),
		NextWeek:       weekStart.AddDate(0, 0, 7).Format("2006-01-02"),
		UserID:         target.ID,
		UserName:       target.DisplayName(),
		IsSelfEmployee: selfEdit && !actor.IsElevated(),
		Days:           days,
		Summary:        summarizeWeek(records, weekStart, weekEnd, target.StartDate, today, target.IsIntern),
	}, nil
}

// summarizeWeek aggregates one employee's week clipped to their start
// date and today. Future days and days before the start date are not
// expected, so they count neither present nor absent.
func summarizeWeek(records []attendance.AttendanceDay, weekStart, weekEnd, employeeStart, today time.Time, isIntern bool) attendance.WeekSummary {
	start, end, ok := attendance.ClipWindow(weekStart, weekEnd, employeeStart, today)
	if !ok {
		return attendance.WeekSummary{}
	}

	expectedDays := attendance.WorkingDaysBetween(start, end)
	dailyHours := attendance.ExpectedDailyHours(isIntern)

	presentDays := 0
	presentHours := 0.0
	for i := range records {
		date := attendance.DateOnly(records[i].Date)
		if date.Before(start) || date.After(end) {
			continue
		}
		if records[i].IsPresent() {
			presentDays++
			presentHours += records[i].WorkedHours()
		}
	}

	absentDays := expectedDays - presentDays
	if absentDays < 0 {
		absentDays = 0
	}
	expectedHours := float64(expectedDays) * dailyHours
	absentHours := expectedHours - presentHours
	if absentHours < 0 {
		absentHours = 0
	}

	return attendance.WeekSummary{
		PresentDays:   presentDays,
		AbsentDays:    absentDays,
		ExpectedDays:  expectedDays,
		PresentHours:  presentHours,
		AbsentHours:   absentHours,
		ExpectedHours: expectedHours,
	}
}

// SaveDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SaveDay(ctx context.Context, actorID string, req attendance.SaveDayRequest) (attendance.SaveDayResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SaveDayResponse{}, err
	}

	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return attendance.SaveDayResponse{}, fmt.Errorf("failed to get actor: %w", err)
	}
	target, err := s.resolveTarget(ctx, actor, req.UserID)
	if err != nil {
		return attendance.SaveDayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	today := attendance.DateOnly(s.now())

	existing, err := s.attendanceRepo.GetByUserAndDate(ctx, target.ID, date)
	if err != nil {
		return attendance.SaveDayResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	state := attendance.EditState{
		ActorRole:    actor.Role,
		SelfEdit:     actor.ID == target.ID,
		Date:         date,
		Today:        today,
		StartDate:    target.StartDate,
		HasArrival:   existing != nil && existing.ArrivalTime != nil,
		HasDeparture: existing != nil && existing.DepartureTime != nil,
	}

	day := attendance.AttendanceDay{UserID: target.ID, Date: date}
	var warnings []string
	changed := 0

	if req.SetArrival {
		switch err := attendance.CanSetArrival(state); {
		case err == nil:
			arrival := attendance.ParseTimeOfDay(req.ArrivalTime, date, attendance.DefaultArrival(date))
			day.ArrivalTime = &arrival
			changed++
		case attendance.IsStateConflict(err):
			warnings = append(warnings, err.Error())
		default:
			return attendance.SaveDayResponse{}, err
		}
	}

	if req.SetDeparture {
		switch err := attendance.CanSetDeparture(state); {
		case err == nil:
			departure := attendance.ParseTimeOfDay(req.DepartureTime, date, attendance.DefaultDeparture(date, target.IsIntern))
			day.DepartureTime = &departure
			changed++
		case attendance.IsStateConflict(err):
			warnings = append(warnings, err.Error())
		default:
			return attendance.SaveDayResponse{}, err
		}
	}

	if changed == 0 {
		return attendance.SaveDayResponse{
			Changed:  0,
			Message:  "nothing to save",
			Warnings: warnings,
			Day:      toDayResponse(existing),
		}, nil
	}

	saved, err := s.attendanceRepo.Upsert(ctx, day)
	if err != nil {
		return attendance.SaveDayResponse{}, fmt.Errorf("failed to save attendance: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		EventType: audit.EventAttendance,
		Message:   fmt.Sprintf("%s saved attendance for %s on %s", actor.DisplayName(), target.DisplayName(), req.Date),
		UserID:    &actor.ID,
		Meta: map[string]interface{}{
			"target_user_id": target.ID,
			"date":           req.Date,
			"set_arrival":    req.SetArrival,
			"set_departure":  req.SetDeparture,
		},
	})

	return attendance.SaveDayResponse{
		Changed:  changed,
		Message:  fmt.Sprintf("saved %d field(s)", changed),
		Warnings: warnings,
		Day:      toDayResponse(&saved),
	}, nil
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, actorID string) (attendance.CheckInResponse, error) {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to get actor: %w", err)
	}

	now := s.now()
	today := attendance.DateOnly(now)

	existing, err := s.attendanceRepo.GetByUserAndDate(ctx, actor.ID, today)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if existing != nil && existing.ArrivalTime != nil {
		return attendance.CheckInResponse{
			Date:        today.Format("2006-01-02"),
			ArrivalTime: formatClock(existing.ArrivalTime),
			Message:     "already checked in",
		}, nil
	}

	state := attendance.EditState{
		ActorRole: actor.Role,
		SelfEdit:  true,
		Date:      today,
		Today:     today,
		StartDate: actor.StartDate,
	}
	if err := attendance.CanSetArrival(state); err != nil {
		return attendance.CheckInResponse{}, err
	}

	arrival := now
	saved, err := s.attendanceRepo.Upsert(ctx, attendance.AttendanceDay{
		UserID:      actor.ID,
		Date:        today,
		ArrivalTime: &arrival,
	})
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to save check-in: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		EventType: audit.EventAttendance,
		Message:   fmt.Sprintf("%s checked in", actor.DisplayName()),
		UserID:    &actor.ID,
	})

	return attendance.CheckInResponse{
		Date:        today.Format("2006-01-02"),
		ArrivalTime: formatClock(saved.ArrivalTime),
		Message:     "checked in",
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, actorID string) (attendance.CheckOutResponse, error) {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to get actor: %w", err)
	}

	now := s.now()
	today := attendance.DateOnly(now)

	existing, err := s.attendanceRepo.GetByUserAndDate(ctx, actor.ID, today)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	state := attendance.EditState{
		ActorRole:    actor.Role,
		SelfEdit:     true,
		Date:         today,
		Today:        today,
		StartDate:    actor.StartDate,
		HasArrival:   existing != nil && existing.ArrivalTime != nil,
		HasDeparture: existing != nil && existing.DepartureTime != nil,
	}
	if err := attendance.CanSetDeparture(state); err != nil {
		if attendance.IsStateConflict(err) {
			return attendance.CheckOutResponse{
				Date:          today.Format("2006-01-02"),
				DepartureTime: formatClock(existing.DepartureTime),
				Message:       "already checked out",
			}, nil
		}
		return attendance.CheckOutResponse{}, err
	}

	departure := now
	saved, err := s.attendanceRepo.Upsert(ctx, attendance.AttendanceDay{
		UserID:        actor.ID,
		Date:          today,
		DepartureTime: &departure,
	})
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to save check-out: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		EventType: audit.EventAttendance,
		Message:   fmt.Sprintf("%s checked out", actor.DisplayName()),
		UserID:    &actor.ID,
	})

	return attendance.CheckOutResponse{
		Date:          today.Format("2006-01-02"),
		DepartureTime: formatClock(saved.DepartureTime),
		Message:       "checked out",
	}, nil
}

// PendingVerification implements attendance.AttendanceService. The list
// is withheld until the verifying supervisor or admin has checked in
// themselves.
func (s *AttendanceServiceImpl) PendingVerification(ctx context.Context, actorID string) (attendance.PendingResponse, error) {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return attendance.PendingResponse{}, fmt.Errorf("failed to get actor: %w", err)
	}
	if !actor.IsElevated() {
		return attendance.PendingResponse{}, user.ErrSupervisorAccessRequired
	}

	today := attendance.DateOnly(s.now())
	response := attendance.PendingResponse{
		Date:          today.Format("2006-01-02"),
		Pending:       []attendance.DayResponse{},
		WeekStartDate: attendance.WeekStart(today).Format("2006-01-02"),
	}

	own, err := s.attendanceRepo.GetByUserAndDate(ctx, actor.ID, today)
	if err != nil {
		return attendance.PendingResponse{}, fmt.Errorf("failed to get own attendance: %w", err)
	}
	checkedIn := own != nil && own.ArrivalTime != nil
	if checkedIn {
		response.CheckedInAt = formatClock(own.ArrivalTime)
	}

	if !checkedIn {
		response.NeedsCheckIn = true
		return response, nil
	}

	pending, err := s.attendanceRepo.ListPendingVerification(ctx, today)
	if err != nil {
		return attendance.PendingResponse{}, fmt.Errorf("failed to list pending verification: %w", err)
	}
	for i := range pending {
		response.Pending = append(response.Pending, *toDayResponse(&pending[i]))
	}
	response.PendingCount = len(response.Pending)

	return response, nil
}

// VerifyBatch implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) VerifyBatch(ctx context.Context, actorID string, req attendance.VerifyRequest) (attendance.VerifyResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.VerifyResponse{}, err
	}

	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return attendance.VerifyResponse{}, fmt.Errorf("failed to get actor: %w", err)
	}
	if !actor.IsElevated() {
		return attendance.VerifyResponse{}, user.ErrSupervisorAccessRequired
	}

	now := s.now()
	today := attendance.DateOnly(now)

	// Verifiers vouch for presence, so they must be present themselves.
	own, err := s.attendanceRepo.GetByUserAndDate(ctx, actor.ID, today)
	if err != nil {
		return attendance.VerifyResponse{}, fmt.Errorf("failed to get own attendance: %w", err)
	}
	if own == nil || own.ArrivalTime == nil {
		return attendance.VerifyResponse{}, attendance.ErrCheckInRequired
	}

	verified, err := s.attendanceRepo.VerifyBatch(ctx, req.IDs, actor.ID, now)
	if err != nil {
		return attendance.VerifyResponse{}, fmt.Errorf("failed to verify batch: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		EventType: audit.EventVerify,
		Message:   fmt.Sprintf("%s verified %d attendance record(s)", actor.DisplayName(), verified),
		UserID:    &actor.ID,
		Meta:      map[string]interface{}{"requested": len(req.IDs), "verified": verified},
	})

	return attendance.VerifyResponse{Verified: verified}, nil
}
