// Package config provides the settings structs of the textbook-rsa binaries and
// loads them from YAML files and environment variables.
//
// Every settings struct carries mapstructure tags for loading and validate tags
// checked by go-playground/validator before the settings are used.
package config
