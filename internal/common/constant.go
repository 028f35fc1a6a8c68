// Package common holds small helpers shared by the console packages.
package common

// HTTP header names and the credential scheme used towards the backend.
const (
	AuthorizationHeaderName = "Authorization"
	BearerScheme            = "Bearer"
	RequestIDHeaderName     = "X-Request-ID"
)
