// Package config loads and validates the application configuration from a
// YAML file and MERGEXML_-prefixed environment variables, and resolves all
// filesystem paths relative to the executable directory.
package config
