package services

import (
	"net/url"
	"strings"
)

// URLState holds the query parameters describing one table view. Control
// parameters (_page, _sort_id, ...) are underscore-prefixed; everything else
// is a filter. Encode is deterministic so the same state always yields the
// same URL.
type URLState struct {
	values url.Values
}

func NewURLState(query string) (URLState, error) {
	values, err := url.ParseQuery(query)
	if err != nil {
		return URLState{}, err
	}
	return URLState{values: values}, nil
}

func (s URLState) Get(name string) string {
	return s.values.Get(name)
}

// Update applies a partial set of field changes: non-empty values are set,
// empty values remove the parameter.
func (s URLState) Update(fields map[string]string) {
	for name, value := range fields {
		if value == "" {
			s.values.Del(name)
		} else {
			s.values.Set(name, value)
		}
	}
}

// ClearFilters removes every filter parameter, keeping the control ones.
func (s URLState) ClearFilters() {
	for name := range s.values {
		if !strings.HasPrefix(name, "_") {
			s.values.Del(name)
		}
	}
}

func (s URLState) Encode() string {
	return s.values.Encode()
}
