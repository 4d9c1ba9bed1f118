// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserRole is the access level of a user.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
	RoleGuest UserRole = "guest"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	}
	return false
}

// RoleResponse is returned by the role endpoints.
type RoleResponse struct {
	Role    UserRole `json:"role"`
	IsAdmin bool     `json:"is_admin"`
}

// AssignRoleRequest is the body of an admin role assignment.
type AssignRoleRequest struct {
	Role UserRole `json:"role"`
}
