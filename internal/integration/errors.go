package integration

import "errors"

var (
	ErrIntegrationNotFound = errors.New("integration not found")
	ErrNotOwned            = errors.New("integration does not belong to user")
)
