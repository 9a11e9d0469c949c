package model

// Identity represents the authenticated principal for the current session.
// The same shape covers ordinary users and administrators; the server decides
// which fields are populated.
type Identity struct {
	ID        int64  `json:"id"`
	StudentID string `json:"student_id,omitempty"`
	AdminID   string `json:"admin_id,omitempty"`
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
}

// DisplayName returns the name shown in dashboard headers.
func (i Identity) DisplayName() string {
	if i.Username != "" {
		return i.Username
	}
	if i.StudentID != "" {
		return i.StudentID
	}
	return i.AdminID
}
