package audit

import "time"

type EntryResponse struct {
	ID        string                 `json:"id"`
	EventType string                 `json:"event_type"`
	Message   string                 `json:"message"`
	UserID    *string                `json:"user_id,omitempty"`
	UserName  *string                `json:"user_name,omitempty"`
	IPAddress string                 `json:"ip_address,omitempty"`
	Meta      map[string]interface{} `json:"meta,omitempty"`
	CreatedAt string                 `json:"created_at"`
}

func ToEntryResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		EventType: e.EventType,
		Message:   e.Message,
		UserID:    e.UserID,
		UserName:  e.UserName,
		IPAddress: e.IPAddress,
		Meta:      e.Meta,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}
