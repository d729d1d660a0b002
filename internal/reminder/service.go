package reminder

import (
	"context"
	"time"

	"meetsync/internal/event"
	eventRepo "meetsync/internal/event/repository"
	"meetsync/internal/reminder/repository"
	"meetsync/pkg/log"
)

type implService struct {
	repo   repository.Repository
	events eventRepo.Repository
	l      log.Logger
}

// NewService creates the store-backed reminder Service.
func NewService(repo repository.Repository, events eventRepo.Repository, l log.Logger) Service {
	return &implService{repo: repo, events: events, l: l}
}

// ScheduleReminders recomputes the event's reminder rows from its offsets.
// Offsets in the past relative to now are skipped.
func (s *implService) ScheduleReminders(ctx context.Context, eventID string) error {
	ev, err := s.events.GetOneEvent(ctx, eventRepo.GetOneEventOptions{ID: eventID})
	if err != nil {
		s.l.Errorf(ctx, "reminder.Schedule GetOneEvent: %v", err)
		return err
	}
	if ev.ID == "" {
		return event.ErrEventNotFound
	}

	if err := s.repo.DeleteRemindersByEvent(ctx, eventID); err != nil {
		return err
	}

	now := time.Now()
	var triggers []time.Time
	for _, minutes := range ev.Reminders {
		t := ev.StartTime.Add(-time.Duration(minutes) * time.Minute)
		if t.After(now) {
			triggers = append(triggers, t)
		}
	}
	if len(triggers) == 0 {
		return nil
	}
	return s.repo.CreateReminders(ctx, eventID, triggers)
}

// ClearReminders drops all pending reminders for the event.
func (s *implService) ClearReminders(ctx context.Context, eventID string) error {
	return s.repo.DeleteRemindersByEvent(ctx, eventID)
}
