package model

// Scope identifies the acting user for a request. It is extracted from the
// JWT by the auth middleware and passed through every use case.
type Scope struct {
	UserID string
}
