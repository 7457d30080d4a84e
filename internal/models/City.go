package models

import "strings"

// CityRegistry is the fixed, ordered allow-list of city ids. It is never mutated after construction.
type CityRegistry struct {
	ids []string
	set map[string]struct{}
}

// NewCityRegistry trims ids and drops blanks and duplicates, keeping first-seen order.
func NewCityRegistry(ids []string) CityRegistry {
	r := CityRegistry{set: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := r.set[id]; dup {
			continue
		}
		r.set[id] = struct{}{}
		r.ids = append(r.ids, id)
	}
	return r
}

// Contains reports whether id is a supported city.
func (r CityRegistry) Contains(id string) bool {
	_, ok := r.set[id]
	return ok
}

// Cities returns a copy in registration order.
func (r CityRegistry) Cities() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}
