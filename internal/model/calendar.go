package model

// CalendarType identifies which provider owns an integration or event.
type CalendarType string

const (
	CalendarTypeGoogle  CalendarType = "google"
	CalendarTypeOutlook CalendarType = "outlook"
	CalendarTypeICal    CalendarType = "ical"

	// CalendarTypeLocal marks events that are never mirrored to any
	// external provider.
	CalendarTypeLocal CalendarType = "local"
)

// Valid reports whether t is a known calendar type.
func (t CalendarType) Valid() bool {
	switch t {
	case CalendarTypeGoogle, CalendarTypeOutlook, CalendarTypeICal, CalendarTypeLocal:
		return true
	}
	return false
}

// External reports whether t refers to an external provider.
func (t CalendarType) External() bool {
	return t.Valid() && t != CalendarTypeLocal
}
