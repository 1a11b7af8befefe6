package justification

import (
	"context"
	"time"
)

type ListFilter struct {
	UserID string
	Status Status
	Page   int
	Limit  int
}

// JustificationRepository persists absence justifications.
type JustificationRepository interface {
	Create(ctx context.Context, j Justification) (Justification, error)
	GetByID(ctx context.Context, id string) (Justification, error)

	// Decide moves a pending justification to approved/rejected in one
	// conditional update. Returns ErrAlreadyProcessed when the row was
	// not pending.
	Decide(ctx context.Context, id string, status Status, decidedBy string, at time.Time) error

	List(ctx context.Context, filter ListFilter) ([]Justification, int64, error)
}
