package calendar

import "meetsync/internal/model"

// Registry holds one Provider per calendar type so request handling picks
// the adapter once instead of switching on the type at every call site.
type Registry struct {
	providers map[model.CalendarType]Provider
}

func NewRegistry(providers ...Provider) Registry {
	m := make(map[model.CalendarType]Provider, len(providers))
	for _, p := range providers {
		m[p.Type()] = p
	}
	return Registry{providers: m}
}

// Provider returns the adapter for the given type.
func (r Registry) Provider(typ model.CalendarType) (Provider, error) {
	p, ok := r.providers[typ]
	if !ok {
		return nil, ErrUnsupportedCalendarType
	}
	return p, nil
}
