package http

import (
	"meetsync/internal/integration"
	"meetsync/pkg/log"
)

type handler struct {
	l  log.Logger
	uc integration.UseCase
}

// New creates a new HTTP handler for the integration domain.
func New(l log.Logger, uc integration.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
