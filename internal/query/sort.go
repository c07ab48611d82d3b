package query

import (
	"fmt"
	"strings"
)

// Direction applies uniformly to every sort field of a request.
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// ParseDirection normalises a raw direction token, defaulting to ascending.
func ParseDirection(raw string) Direction {
	if strings.EqualFold(raw, "desc") {
		return Descending
	}
	return Ascending
}

// Field identifies a sortable attribute of a resource. Each resource declares
// its own fixed set of Field constants.
type Field string

// FieldMapping translates sort fields to storage column names. Mappings are
// built once at startup and never mutated.
type FieldMapping map[Field]string

// Validate checks that every declared field has exactly one column mapping.
// An unmapped field is a configuration defect, surfaced before serving.
func (m FieldMapping) Validate(fields ...Field) error {
	for _, f := range fields {
		if _, ok := m[f]; !ok {
			return fmt.Errorf("sort field %q has no column mapping", f)
		}
	}
	return nil
}

const (
	DefaultPage = 1
	DefaultSize = 10
	MaxSize     = 100
)

// Sort captures the declarative sort and pagination portion of a list request.
type Sort struct {
	Fields    []Field
	Direction Direction
	Page      int
	Size      int
}

// DefaultSort returns the store-default ordering with first-page pagination.
func DefaultSort() Sort {
	return Sort{Direction: Ascending, Page: DefaultPage, Size: DefaultSize}
}

// Normalize clamps page and size into their allowed bands and fills the
// direction default.
func (s *Sort) Normalize() {
	if s.Page < 1 {
		s.Page = DefaultPage
	}
	if s.Size < 1 {
		s.Size = DefaultSize
	}
	if s.Size > MaxSize {
		s.Size = MaxSize
	}
	if s.Direction != Descending {
		s.Direction = Ascending
	}
}

// OrderClause pairs a storage column with the request direction.
type OrderClause struct {
	Column    string
	Direction Direction
}

// BuildOrder maps the requested fields, in order, through the resource's
// field mapping. Duplicates are preserved as given; the store's tie-break for
// duplicate keys is left to the store. An empty field list yields an empty
// ordering, letting the store apply its default.
func BuildOrder(sort Sort, mapping FieldMapping) ([]OrderClause, error) {
	if len(sort.Fields) == 0 {
		return nil, nil
	}

	clauses := make([]OrderClause, 0, len(sort.Fields))
	for _, f := range sort.Fields {
		column, ok := mapping[f]
		if !ok {
			return nil, fmt.Errorf("unknown sort field %q", f)
		}
		clauses = append(clauses, OrderClause{Column: column, Direction: sort.Direction})
	}
	return clauses, nil
}

// OrderSQL renders an ordering as an ORDER BY body, e.g. "score DESC, status DESC".
// An empty ordering renders the empty string.
func OrderSQL(clauses []OrderClause) string {
	if len(clauses) == 0 {
		return ""
	}

	parts := make([]string, 0, len(clauses))
	for _, c := range clauses {
		parts = append(parts, fmt.Sprintf("%s %s", c.Column, c.Direction))
	}
	return strings.Join(parts, ", ")
}
