package ics

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"
)

// Parse decodes an iCalendar payload and returns the event occurrences that
// intersect [from, to). Recurring events are expanded via their RRULE.
func Parse(r io.Reader, from, to time.Time) ([]FeedEvent, error) {
	decoder := ical.NewDecoder(r)

	var out []FeedEvent
	seen := make(map[string]bool)

	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode calendar: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}

			base := parseEvent(comp)
			if base.StartTime.IsZero() || base.EndTime.IsZero() {
				continue
			}

			instances := []FeedEvent{base}
			if prop := comp.Props.Get(ical.PropRecurrenceRule); prop != nil {
				instances = expandRecurrence(base, prop.Value, from, to)
			}

			for _, ev := range instances {
				if !intersects(ev, from, to) || seen[ev.UID] {
					continue
				}
				seen[ev.UID] = true
				out = append(out, ev)
			}
		}
	}
	return out, nil
}

func intersects(ev FeedEvent, from, to time.Time) bool {
	return ev.StartTime.Before(to) && ev.EndTime.After(from)
}

// expandRecurrence generates instances of a recurring event within [from, to).
// On an unparseable RRULE the base occurrence alone is returned.
func expandRecurrence(base FeedEvent, rule string, from, to time.Time) []FeedEvent {
	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return []FeedEvent{base}
	}
	opt.Dtstart = base.StartTime

	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return []FeedEvent{base}
	}

	duration := base.EndTime.Sub(base.StartTime)
	var out []FeedEvent
	for _, start := range r.Between(from.Add(-duration), to, true) {
		ev := base
		ev.StartTime = start
		ev.EndTime = start.Add(duration)
		ev.UID = fmt.Sprintf("%s-%s", base.UID, start.UTC().Format("20060102T150405Z"))
		out = append(out, ev)
	}
	return out
}

func parseEvent(comp *ical.Component) FeedEvent {
	var ev FeedEvent

	if prop := comp.Props.Get(ical.PropUID); prop != nil {
		ev.UID = prop.Value
	}
	if prop := comp.Props.Get(ical.PropSummary); prop != nil {
		ev.Title = prop.Value
	}
	if prop := comp.Props.Get(ical.PropDescription); prop != nil {
		ev.Description = prop.Value
	}
	if prop := comp.Props.Get(ical.PropLocation); prop != nil {
		ev.Location = prop.Value
	}
	if prop := comp.Props.Get(ical.PropStatus); prop != nil {
		ev.Status = prop.Value
	}

	if prop := comp.Props.Get(ical.PropDateTimeStart); prop != nil {
		if t, err := parseDateTime(prop); err == nil {
			ev.StartTime = t
		}
		// DATE (no time part) marks an all-day event
		if typ := prop.Params.Get(ical.ParamValue); typ == "DATE" {
			ev.IsAllDay = true
		}
	}
	if prop := comp.Props.Get(ical.PropDateTimeEnd); prop != nil {
		if t, err := parseDateTime(prop); err == nil {
			ev.EndTime = t
		}
	}
	if ev.EndTime.IsZero() && !ev.StartTime.IsZero() {
		if ev.IsAllDay {
			ev.EndTime = ev.StartTime.Add(24 * time.Hour)
		} else {
			ev.EndTime = ev.StartTime.Add(time.Hour)
		}
	}
	return ev
}

// parseDateTime tries the library's typed accessor first, then a handful of
// raw layouts feeds use in the wild.
func parseDateTime(prop *ical.Prop) (time.Time, error) {
	if t, err := prop.DateTime(time.UTC); err == nil {
		return t, nil
	}

	value := strings.TrimSpace(prop.Value)
	layouts := []string{
		"20060102T150405Z",
		"20060102T150405",
		"20060102",
		time.RFC3339,
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse datetime value: %s", value)
}
