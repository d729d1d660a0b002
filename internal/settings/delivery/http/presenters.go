package http

import (
	"time"

	"meetsync/internal/model"
	"meetsync/internal/settings"
)

// --- Request DTOs ---

type updateReq struct {
	DefaultCalendarIntegrationID string `json:"default_calendar_integration_id"`
	DefaultCalendarType          string `json:"default_calendar_type" binding:"omitempty,oneof=google outlook ical local"`
	Timezone                     string `json:"timezone"              binding:"max=64"`
}

func (r updateReq) toInput() settings.UpdateInput {
	return settings.UpdateInput{
		DefaultCalendarIntegrationID: r.DefaultCalendarIntegrationID,
		DefaultCalendarType:          model.CalendarType(r.DefaultCalendarType),
		Timezone:                     r.Timezone,
	}
}

// --- Response DTOs ---

type settingsResp struct {
	DefaultCalendarIntegrationID string    `json:"default_calendar_integration_id,omitempty"`
	DefaultCalendarType          string    `json:"default_calendar_type,omitempty"`
	Timezone                     string    `json:"timezone,omitempty"`
	UpdatedAt                    time.Time `json:"updated_at"`
}

func newSettingsResp(s settings.Settings) settingsResp {
	return settingsResp{
		DefaultCalendarIntegrationID: s.DefaultCalendarIntegrationID,
		DefaultCalendarType:          string(s.DefaultCalendarType),
		Timezone:                     s.Timezone,
		UpdatedAt:                    s.UpdatedAt,
	}
}
