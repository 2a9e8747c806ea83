// Package models contains data structures for the application's domain models.
package models

import (
	"slices"
	"time"
)

// User represents a registered account.
//
// Passwords are stored and compared in plain text: this is a demo dataset and
// the tradeoff is part of the product contract, not an oversight to fix.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Avatar    string    `json:"avatar,omitempty"`
	Cover     string    `json:"cover,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Friends   []string  `json:"friends"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy. Stores hand out clones so a caller can never
// reach the shared snapshot through a returned record.
func (u User) Clone() User {
	u.Friends = slices.Clone(u.Friends)
	return u
}

// HasFriend reports whether friendID is in the user's friend list.
func (u *User) HasFriend(friendID string) bool {
	return slices.Contains(u.Friends, friendID)
}
