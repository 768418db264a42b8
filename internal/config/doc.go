// Package config loads and validates the backend configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged with first-non-zero-wins priority: environment
// variables, then flags, then the JSON file. The merged result is validated
// and optional fields receive defaults; see [GetStructuredConfig].
package config
