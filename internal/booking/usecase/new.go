package usecase

import (
	"meetsync/internal/booking/repository"
	"meetsync/internal/calendar"
	"meetsync/pkg/log"
)

// implUseCase is the private implementation of booking.UseCase.
type implUseCase struct {
	repo     repository.Repository
	calendar calendar.UseCase
	l        log.Logger
}

// New creates a new booking UseCase implementation.
func New(repo repository.Repository, calendarUC calendar.UseCase, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		calendar: calendarUC,
		l:        l,
	}
}
