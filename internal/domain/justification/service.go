package justification

import "context"

// JustificationService defines business logic for absence justifications
type JustificationService interface {
	// Create stores a justification created by a supervisor/admin on
	// behalf of an employee, uploading the optional receipt.
	Create(ctx context.Context, actorID string, req CreateRequest) (Response, error)

	// Approve moves a pending justification to approved. One-way.
	Approve(ctx context.Context, actorID, id string) (Response, error)

	// Reject moves a pending justification to rejected. One-way.
	Reject(ctx context.Context, actorID, id string) (Response, error)

	List(ctx context.Context, filter ListFilter) (ListResponse, error)
}
