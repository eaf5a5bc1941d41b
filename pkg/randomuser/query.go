package randomuser

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// queryString accumulates key/value pairs in insertion order. Setting an
// existing key replaces its value but keeps its original position, which
// is how the pagination overrides of results and seed behave upstream.
type queryString struct {
	keys   []string
	values map[string]string
}

func (q *queryString) set(key, value string) {
	if _, ok := q.values[key]; !ok {
		q.keys = append(q.keys, key)
	}
	q.values[key] = value
}

func (q *queryString) encode() string {
	var b strings.Builder
	for i, key := range q.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(escapeValue(q.values[key]))
	}
	return b.String()
}

// escapeValue percent-encodes a query value but keeps commas literal;
// the upstream API reads multi-valued parameters as comma-joined lists.
func escapeValue(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "%2C", ",")
}

// value renders the comma-joined password descriptor. The boolean is
// false when nothing at all was specified and no key should be emitted.
// An empty charset with a bound still emits, producing values like ",8" —
// that degenerate form is part of the passthrough contract.
func (s *PasswordSpec) value() (string, bool) {
	if len(s.Charset) == 0 && s.Min == 0 && s.Max == 0 {
		return "", false
	}

	v := strings.Join(s.Charset, ",")
	switch {
	case s.Min != 0 && s.Max != 0:
		v += fmt.Sprintf(",%d-%d", s.Min, s.Max)
	case s.Min != 0:
		v += fmt.Sprintf(",%d", s.Min)
	case s.Max != 0:
		v += fmt.Sprintf(",%d", s.Max)
	}
	return v, true
}

// BuildQuery maps a validated Params onto the upstream query string. It is
// a pure function: same input, same string. Keys appear in the fixed order
// below; absent fields and empty collections emit no key at all.
//
// The password value is JSON-string-encoded before being placed in the
// query, so the upstream receives it wrapped in literal quotes. That
// double-encoding is reproduced verbatim for compatibility; do not fix it
// here without reverifying the upstream contract.
func BuildQuery(p Params) string {
	q := &queryString{values: make(map[string]string)}

	if p.Results != nil {
		q.set("results", strconv.Itoa(*p.Results))
	}
	if p.Gender != "" {
		q.set("gender", p.Gender)
	}
	if p.Password != nil {
		if raw, ok := p.Password.value(); ok {
			encoded, _ := json.Marshal(raw)
			q.set("password", string(encoded))
		}
	}
	if p.Seed != "" {
		q.set("seed", p.Seed)
	}
	if len(p.Nationalities) > 0 {
		// the upstream key is nat, not nationalities
		q.set("nat", strings.Join(p.Nationalities, ","))
	}
	if p.Pagination != nil {
		if p.Pagination.Page != nil {
			q.set("page", strconv.Itoa(*p.Pagination.Page))
		}
		if p.Pagination.Results != nil {
			q.set("results", strconv.Itoa(*p.Pagination.Results))
		}
		if p.Pagination.Seed != "" {
			q.set("seed", p.Pagination.Seed)
		}
	}
	if len(p.Inc) > 0 {
		q.set("inc", strings.Join(p.Inc, ","))
	}
	if len(p.Exc) > 0 {
		q.set("exc", strings.Join(p.Exc, ","))
	}

	return q.encode()
}
