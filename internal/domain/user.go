package domain

import "time"

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name,omitempty"`
	IsGuest      bool      `json:"is_guest"`
	CreatedAt    time.Time `json:"created_at"`
}

// MemberName is the name shown next to comments and selections.
func (u *User) MemberName() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// IsMember reports whether the user is a registered (non-guest) family member.
// Members act as admins over shared content.
func (u *User) IsMember() bool {
	return !u.IsGuest
}
