// Package auth issues and validates the HS256 access and refresh tokens used
// by the API, and verifies bcrypt password hashes.
package auth
