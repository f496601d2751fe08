package filter

import (
	"net/url"
	"strconv"
	"time"
)

// Direction orders cursor-based listings.
type Direction string

const (
	// Ascending lists oldest first.
	Ascending Direction = "asc"
	// Descending lists newest first.
	Descending Direction = "desc"
)

// Filter is an open key/value bag used to parameterize search and list
// requests. Keys map directly onto API query parameter names.
type Filter struct {
	values url.Values
}

// New creates an empty filter.
func New() *Filter {
	return &Filter{values: url.Values{}}
}

// Set adds a string parameter.
func (f *Filter) Set(key, value string) *Filter {
	f.values.Set(key, value)
	return f
}

// SetInt adds an integer parameter.
func (f *Filter) SetInt(key string, value int) *Filter {
	f.values.Set(key, strconv.Itoa(value))
	return f
}

// SetBool adds a boolean parameter.
func (f *Filter) SetBool(key string, value bool) *Filter {
	f.values.Set(key, strconv.FormatBool(value))
	return f
}

// SetTime adds a timestamp parameter in RFC 3339 format.
func (f *Filter) SetTime(key string, value time.Time) *Filter {
	f.values.Set(key, value.UTC().Format(time.RFC3339))
	return f
}

// SetCursor sets the cursor token and ordering direction for cursor-based
// list endpoints.
func (f *Filter) SetCursor(cursor string, dir Direction) *Filter {
	if cursor != "" {
		f.values.Set("cursor", cursor)
	}
	f.values.Set("order", string(dir))
	return f
}

// Get returns the value for a key, or "" when unset.
func (f *Filter) Get(key string) string {
	return f.values.Get(key)
}

// Values renders the filter as url.Values. The returned map is a copy;
// mutating it does not affect the filter.
func (f *Filter) Values() url.Values {
	out := make(url.Values, len(f.values))
	for k, vs := range f.values {
		out[k] = append([]string(nil), vs...)
	}
	return out
}

// Len returns the number of parameters set.
func (f *Filter) Len() int {
	return len(f.values)
}
