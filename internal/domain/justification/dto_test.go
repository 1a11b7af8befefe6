package justification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRequest() CreateRequest {
	return CreateRequest{
		UserID:    "u1",
		StartDate: "2026-01-05",
		EndDate:   "2026-01-07",
		Reason:    "sick",
	}
}

func TestCreateRequestValidate(t *testing.T) {
	req := validRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateRequestRejectsInvertedRange(t *testing.T) {
	req := validRequest()
	req.StartDate = "2026-01-07"
	req.EndDate = "2026-01-05"
	assert.Error(t, req.Validate())
}

func TestCreateRequestRejectsUnknownReason(t *testing.T) {
	req := validRequest()
	req.Reason = "vacation"
	assert.Error(t, req.Validate())
}

func TestCreateRequestOtherNeedsDescription(t *testing.T) {
	req := validRequest()
	req.Reason = "other"
	assert.Error(t, req.Validate())

	req.OtherReason = "moving apartments"
	assert.NoError(t, req.Validate())
}

func TestStatusCanDecide(t *testing.T) {
	assert.True(t, StatusPending.CanDecide())
	assert.False(t, StatusApproved.CanDecide())
	assert.False(t, StatusRejected.CanDecide())
}
