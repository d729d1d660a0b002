package gcal

// Calendar is a simplified representation of a Google calendar entry.
type Calendar struct {
	ID      string
	Name    string
	Primary bool
}
