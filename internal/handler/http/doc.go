// Package http is the REST API of the companion backend.
//
// Routes live under /api. Everything except registration, login and the
// version endpoint sits behind the bearer-token middleware; role assignment
// also requires the admin role. Tracing, access logs, gzip and the journal
// HMAC check are middleware; every handler delegates to the service layer and
// reports failures through the errorResponses table.
package http
