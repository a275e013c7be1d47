// Package http contains the HTTP handlers for the merge service API.
package http
