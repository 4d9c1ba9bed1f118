// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the config names
// neither an HTTP nor a gRPC address. The backend refuses to start then.
var errNoHandlersAreCreated = errors.New("no transport address configured")
