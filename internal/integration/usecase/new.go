package usecase

import (
	eventRepo "meetsync/internal/event/repository"
	"meetsync/internal/integration/repository"
	"meetsync/pkg/log"
)

// implUseCase is the private implementation of integration.UseCase.
type implUseCase struct {
	repo   repository.Repository
	events eventRepo.Repository
	l      log.Logger
}

// New creates a new integration UseCase implementation.
func New(repo repository.Repository, events eventRepo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		events: events,
		l:      l,
	}
}
