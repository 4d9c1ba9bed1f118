// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer strings.
//
// The Msg* constants are the wire messages written into the {"error": "..."}
// envelope by the backend and matched by the client when it maps transport
// errors back to business errors. The Copy* constants in copy.go are the
// user-facing texts of the terminal client.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the login/password pair
	// does not match any user.
	MsgInvalidLoginPassword = "invalid login/password"

	MsgInternalServerError = "internal server error"

	// MsgStorageUnavailable is returned when the database reports a
	// transient failure.
	MsgStorageUnavailable = "storage temporarily unavailable"

	MsgTokenIsExpired          = "token is expired"
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"
	MsgNoAuthorizationHeader   = "authorization header is missing"

	// MsgAccessDenied is returned when a non-admin calls an admin route.
	MsgAccessDenied = "access denied"

	MsgRegistrationFailed = "registration failed"
	MsgLoginFailed        = "login failed"
	MsgLoginAlreadyExists = "login already exists"

	MsgUserNotFound    = "user not found"
	MsgProfileNotFound = "profile not found"

	// MsgEmptyName is returned when a profile is saved without a name.
	MsgEmptyName = "name is required"

	// MsgUnknownLanguage is returned when a profile or history filter uses
	// a locale code outside the supported set.
	MsgUnknownLanguage = "unknown language code"

	MsgInvalidRole  = "invalid role"
	MsgInvalidUser  = "invalid user id"
	MsgEmptyText    = "text is required"
	MsgTextTooLarge = "text is too large"

	MsgNoEntriesProvided = "no conversation entries provided"
	MsgInvalidSender     = "invalid sender"

	// MsgIntegrityCheckFailed is returned when the HMAC of a journal batch
	// does not match its entries.
	MsgIntegrityCheckFailed = "integrity check failed"
)
