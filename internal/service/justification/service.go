package justification

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gosimple/slug"

	"github.com/naumur/presence-backend-go/internal/domain/audit"
	"github.com/naumur/presence-backend-go/internal/domain/justification"
	"github.com/naumur/presence-backend-go/internal/domain/user"
	"github.com/naumur/presence-backend-go/internal/pkg/storage"
	auditsvc "github.com/naumur/presence-backend-go/internal/service/audit"
)

type JustificationServiceImpl struct {
	justificationRepo justification.JustificationRepository
	userRepo          user.UserRepository
	files             storage.FileStorage
	recorder          *auditsvc.Recorder
	now               func() time.Time
}

func NewJustificationService(
	justificationRepo justification.JustificationRepository,
	userRepo user.UserRepository,
	files storage.FileStorage,
	recorder *auditsvc.Recorder,
) justification.JustificationService {
	return &JustificationServiceImpl{
		justificationRepo: justificationRepo,
		userRepo:          userRepo,
		files:             files,
		recorder:          recorder,
		now:               time.Now,
	}
}

func toResponse(j justification.Justification) justification.Response {
	response := justification.Response{
		ID:          j.ID,
		UserID:      j.UserID,
		CreatedBy:   j.CreatedBy,
		StartDate:   j.StartDate.Format("2006-01-02"),
		EndDate:     j.EndDate.Format("2006-01-02"),
		Reason:      string(j.Reason),
		OtherReason: j.OtherReason,
		ReceiptPath: j.ReceiptPath,
		Status:      string(j.Status),
		DecidedBy:   j.DecidedBy,
		CreatedAt:   j.CreatedAt.Format(time.RFC3339),
	}
	if j.UserName != nil {
		response.UserName = *j.UserName
	}
	if j.CreatedByName != nil {
		response.CreatedByName = *j.CreatedByName
	}
	if j.DecidedAt != nil {
		decided := j.DecidedAt.Format(time.RFC3339)
		response.DecidedAt = &decided
	}
	return response
}

// Create implements justification.JustificationService.
func (s *JustificationServiceImpl) Create(ctx context.Context, actorID string, req justification.CreateRequest) (justification.Response, error) {
	if err := req.Validate(); err != nil {
		return justification.Response{}, err
	}

	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return justification.Response{}, fmt.Errorf("failed to get actor: %w", err)
	}
	if !actor.IsElevated() {
		return justification.Response{}, user.ErrSupervisorAccessRequired
	}

	target, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return justification.Response{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	entry := justification.Justification{
		UserID:    target.ID,
		CreatedBy: actor.ID,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    justification.Reason(req.Reason),
	}
	if req.OtherReason != "" {
		entry.OtherReason = &req.OtherReason
	}

	if req.File != nil && req.FileHeader != nil {
		path := fmt.Sprintf("justifications/%s/%s_to_%s/%s",
			slug.Make(target.DisplayName()),
			req.StartDate, req.EndDate,
			filepath.Base(req.FileHeader.Filename),
		)
		stored, err := s.files.Save(ctx, path, req.File)
		if err != nil {
			return justification.Response{}, fmt.Errorf("failed to store receipt: %w", err)
		}
		entry.ReceiptPath = &stored
	}

	created, err := s.justificationRepo.Create(ctx, entry)
	if err != nil {
		return justification.Response{}, fmt.Errorf("failed to create justification: %w", err)
	}

	s.recorder.Record(ctx, audit.Entry{
		EventType: audit.EventJustification,
		Message:   fmt.Sprintf("%s justified absence of %s (%s to %s)", actor.DisplayName(), target.DisplayName(), req.StartDate, req.EndDate),
		UserID:    &actor.ID,
		Meta:      map[string]interface{}{"justification_id": created.ID, "reason": req.Reason},
	})

	return toResponse(created), nil
}

func (s *JustificationServiceImpl) decide(ctx context.Context, actorID, id string, status justification.Status) (justification.Response, error) {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return justification.Response{}, fmt.Errorf("failed to get actor: %w", err)
	}
	if !actor.IsElevated() {
		return justification.Response{}, user.ErrSupervisorAccessRequired
	}

	if err := s.justificationRepo.Decide(ctx, id, status, actor.ID, s.now()); err != nil {
		return justification.Response{}, err
	}

	decided, err := s.justificationRepo.GetByID(ctx, id)
	if err != nil {
		return justification.Response{}, err
	}

	s.recorder.Record(ctx, audit.Entry{
		EventType: audit.EventJustification,
		Message:   fmt.Sprintf("justification %s %s", id, status),
		UserID:    &actor.ID,
	})

	return toResponse(decided), nil
}

// Approve implements justification.JustificationService.
func (s *JustificationServiceImpl) Approve(ctx context.Context, actorID, id string) (justification.Response, error) {
	return s.decide(ctx, actorID, id, justification.StatusApproved)
}

// Reject implements justification.JustificationService.
func (s *JustificationServiceImpl) Reject(ctx context.Context, actorID, id string) (justification.Response, error) {
	return s.decide(ctx, actorID, id, justification.StatusRejected)
}

// List implements justification.JustificationService.
func (s *JustificationServiceImpl) List(ctx context.Context, filter justification.ListFilter) (justification.ListResponse, error) {
	justifications, total, err := s.justificationRepo.List(ctx, filter)
	if err != nil {
		return justification.ListResponse{}, fmt.Errorf("failed to list justifications: %w", err)
	}

	response := justification.ListResponse{Justifications: []justification.Response{}, Total: total}
	for _, j := range justifications {
		response.Justifications = append(response.Justifications, toResponse(j))
	}
	return response, nil
}
