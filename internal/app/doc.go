// Package app wires configuration, logging, metrics, the merge service and
// the HTTP router into a runnable application.
package app
