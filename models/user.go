// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an account known to the backend.
type User struct {
	UserID int64 `json:"-"`

	// Login is unique across all users.
	Login string `json:"login"`

	// Password carries the plaintext password on the way in and is
	// replaced by the bcrypt hash before it reaches the store.
	Password string `json:"password,omitempty"`

	Role UserRole `json:"role,omitempty"`

	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
