package presence

// OnlineUser is one employee's derived presence for the online listing.
type OnlineUser struct {
	UserID     string  `json:"user_id"`
	UserName   string  `json:"user_name"`
	LastSeenAt *string `json:"last_seen_at,omitempty"`
	LastIP     string  `json:"last_ip,omitempty"`
	Online     bool    `json:"online"`
}

type OnlineResponse struct {
	Date  string       `json:"date"`
	Users []OnlineUser `json:"users"`
}
