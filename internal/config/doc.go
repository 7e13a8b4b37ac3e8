// Package config loads and validates the calhub server configuration.
//
// Values come from three sources, merged in priority order: environment
// variables (caarlos0/env tags), command-line flags, and an optional JSON
// file referenced by the CONFIG variable or the -c flag. A defaults layer
// fills whatever remains unset. The merged result is validated before it
// is handed to the rest of the application.
package config
