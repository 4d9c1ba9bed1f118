// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON error envelope written by the backend.
type ErrorResponse struct {
	Error string `json:"error"`
}
