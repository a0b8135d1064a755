package models

// Session is the (user, account) pair currently active on a device.
type Session struct {
	UserID    string `json:"user_id"`
	AccountID string `json:"account_id"`
}

// Valid reports whether both identifiers are set. Partial sessions are never stored.
func (s Session) Valid() bool {
	return s.UserID != "" && s.AccountID != ""
}
