package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/naumur/presence-backend-go/internal/domain/attendance"
	"github.com/naumur/presence-backend-go/internal/domain/audit"
	"github.com/naumur/presence-backend-go/internal/domain/department"
	"github.com/naumur/presence-backend-go/internal/domain/presence"
	"github.com/naumur/presence-backend-go/internal/domain/report"
	"github.com/naumur/presence-backend-go/internal/domain/user"
	auditsvc "github.com/naumur/presence-backend-go/internal/service/audit"
)

const historyPageSize = 12

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
	departmentRepo department.DepartmentRepository
	presenceSvc    presence.PresenceService
	recorder       *auditsvc.Recorder
	now            func() time.Time
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	departmentRepo department.DepartmentRepository,
	presenceSvc presence.PresenceService,
	recorder *auditsvc.Recorder,
) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		presenceSvc:    presenceSvc,
		recorder:       recorder,
		now:            time.Now,
	}
}

// Dashboard implements report.ReportService.
func (s *ReportServiceImpl) Dashboard(ctx context.Context, start, end time.Time) (report.DashboardResponse, error) {
	today := attendance.DateOnly(s.now())
	start, end = attendance.DateOnly(start), attendance.DateOnly(end)
	if end.After(today) {
		end = today
	}
	if start.After(end) {
		start = end
	}

	employees, err := s.userRepo.ListEmployees(ctx)
	if err != nil {
		return report.DashboardResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	windowDays, err := s.attendanceRepo.ListByRange(ctx, start, end)
	if err != nil {
		return report.DashboardResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	byUser := make(map[string][]attendance.AttendanceDay)
	for _, d := range windowDays {
		byUser[d.UserID] = append(byUser[d.UserID], d)
	}

	online, err := s.presenceSvc.OnlineMap(ctx)
	if err != nil {
		return report.DashboardResponse{}, fmt.Errorf("failed to derive online map: %w", err)
	}

	response := report.DashboardResponse{
		StartDate:   start.Format("2006-01-02"),
		EndDate:     end.Format("2006-01-02"),
		Departments: []report.DepartmentSummary{},
		Employees:   []report.EmployeeSummary{},
		Cards:       []report.EmployeeCard{},
	}

	summaries := make(map[string]report.EmployeeSummary, len(employees))
	for _, emp := range employees {
		summary := SummarizeEmployee(emp, byUser[emp.ID], start, end, today)
		summaries[emp.ID] = summary
		response.Employees = append(response.Employees, summary)

		allDays, err := s.attendanceRepo.ListByUserAndRange(ctx, emp.ID, attendance.DateOnly(emp.StartDate), today)
		if err != nil {
			return report.DashboardResponse{}, fmt.Errorf("failed to list attendance for %s: %w", emp.ID, err)
		}
		allTime := SummarizeEmployee(emp, allDays, attendance.DateOnly(emp.StartDate), today, today)
		response.Cards = append(response.Cards, report.EmployeeCard{
			UserID:       emp.ID,
			Name:         emp.DisplayName(),
			StartDate:    attendance.DateOnly(emp.StartDate).Format("2006-01-02"),
			Online:       online[emp.ID],
			PresentHours: allTime.PresentHours,
			AbsentHours:  allTime.AbsentHours,
			AbsentDays:   allTime.AbsentDays,
		})
	}

	response.Departments = SummarizeDepartments(employees, summaries)

	return response, nil
}

// HistoryWeeks implements report.ReportService. Weeks overlapping
// [start, end] are listed newest first.
func (s *ReportServiceImpl) HistoryWeeks(ctx context.Context, start, end time.Time, page int) (report.HistoryResponse, error) {
	today := attendance.DateOnly(s.now())
	start, end = attendance.DateOnly(start), attendance.DateOnly(end)
	if end.After(today) {
		end = today
	}

	var weeks []report.HistoryWeek
	for monday := attendance.WeekStart(end); !monday.Before(attendance.WeekStart(start)); monday = monday.AddDate(0, 0, -7) {
		sunday := monday.AddDate(0, 0, 6)
		weeks = append(weeks, report.HistoryWeek{
			Start: monday.Format("2006-01-02"),
			End:   sunday.Format("2006-01-02"),
			Label: fmt.Sprintf("%s - %s", monday.Format("02 Jan"), sunday.Format("02 Jan 2006")),
		})
	}

	totalPages := (len(weeks) + historyPageSize - 1) / historyPageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	from := (page - 1) * historyPageSize
	to := from + historyPageSize
	if from > len(weeks) {
		from = len(weeks)
	}
	if to > len(weeks) {
		to = len(weeks)
	}

	return report.HistoryResponse{
		StartDate:  start.Format("2006-01-02"),
		EndDate:    end.Format("2006-01-02"),
		Weeks:      weeks[from:to],
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// WeekMatrix implements report.ReportService.
func (s *ReportServiceImpl) WeekMatrix(ctx context.Context, weekStart time.Time) (report.WeekMatrix, error) {
	weekStart = attendance.WeekStart(weekStart)
	weekEnd := weekStart.AddDate(0, 0, 6)

	departments, err := s.departmentRepo.List(ctx, true)
	if err != nil {
		return report.WeekMatrix{}, fmt.Errorf("failed to list departments: %w", err)
	}
	employees, err := s.userRepo.ListEmployees(ctx)
	if err != nil {
		return report.WeekMatrix{}, fmt.Errorf("failed to list employees: %w", err)
	}
	days, err := s.attendanceRepo.ListByRange(ctx, weekStart, weekEnd)
	if err != nil {
		return report.WeekMatrix{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	return BuildWeekMatrix(weekStart, departments, employees, days), nil
}

// Export implements report.ReportService.
func (s *ReportServiceImpl) Export(ctx context.Context, actorID string, weekStart time.Time, format string, w io.Writer) error {
	if format != report.FormatCSV && format != report.FormatXLSX {
		return report.ErrUnsupportedFormat
	}

	matrix, err := s.WeekMatrix(ctx, weekStart)
	if err != nil {
		return err
	}

	switch format {
	case report.FormatCSV:
		err = WriteCSV(w, matrix)
	case report.FormatXLSX:
		err = WriteXLSX(w, matrix)
	}
	if err != nil {
		return err
	}

	s.recorder.Record(ctx, audit.Entry{
		EventType: audit.EventExport,
		Message:   fmt.Sprintf("week %s exported as %s", matrix.WeekStart, format),
		UserID:    &actorID,
		Meta:      map[string]interface{}{"week_start": matrix.WeekStart, "format": format},
	})

	return nil
}
