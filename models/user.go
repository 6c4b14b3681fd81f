package models

import "time"

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HasPassword returns true if the account has a usable password hash.
func (u User) HasPassword() bool {
	return u.PasswordHash != ""
}

// PublicUser is the shape returned by the account endpoints.
type PublicUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Public strips everything but the identifiers.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email}
}
