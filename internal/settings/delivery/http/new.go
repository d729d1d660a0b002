package http

import (
	"meetsync/internal/settings"
	"meetsync/pkg/log"
)

type handler struct {
	l  log.Logger
	uc settings.UseCase
}

// New creates a new HTTP handler for the settings domain.
func New(l log.Logger, uc settings.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
