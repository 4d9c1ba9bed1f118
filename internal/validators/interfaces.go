// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the companion's inputs before they reach the
// services: credentials, profiles, free text and conversation batches.
//
// Validators return the sentinel errors of this package, so that the HTTP
// layer can map every rejection to a specific 400 message.
package validators

import "context"

// Validator checks one value. The optional field names let a caller ask for
// a subset of the rules, e.g. only "login" and "password" of a user.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
