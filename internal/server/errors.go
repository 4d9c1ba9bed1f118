// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated means the handlers and the config left no
// transport to run.
var errNoServersAreCreated = errors.New("no transport to serve")
