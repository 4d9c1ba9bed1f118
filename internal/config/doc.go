// Package config provides configuration loading, merging, and validation
// facilities for the companion client and backend.
//
// Configuration is assembled from multiple sources. For every field the
// first source with a non-zero value wins:
//  1. Environment variables (a .env file in the working directory is loaded first)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults, see [Defaults]
//
// The main entry points are [GetStructuredConfig] for the backend and
// [GetClientConfig] for the terminal client.
package config
