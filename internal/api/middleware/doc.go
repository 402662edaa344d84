// Package middleware contains the HTTP middleware shared by all API routes:
// trace IDs with request-scoped loggers, CORS, and bearer-token
// authentication.
package middleware
