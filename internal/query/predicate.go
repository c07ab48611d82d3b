package query

import (
	"fmt"
	"strings"
)

// Op discriminates predicate condition variants.
type Op int

const (
	// OpEquals matches rows whose column equals a single value.
	OpEquals Op = iota
	// OpRange matches rows whose column falls inside a closed range; either
	// bound may be absent.
	OpRange
)

// Condition is one per-column constraint. For OpEquals only Value is set; for
// OpRange Lo and/or Hi are set.
type Condition struct {
	Column string
	Op     Op
	Value  interface{}
	Lo     interface{}
	Hi     interface{}
}

// Predicate is an ordered conjunction of conditions. An empty predicate
// matches every row.
type Predicate []Condition

// Builder accumulates conditions from a filter's present fields.
type Builder struct {
	conditions []Condition
}

// Equals appends an equality condition when the value is present.
func Equals[T any](b *Builder, column string, value *T) {
	if value == nil {
		return
	}
	b.conditions = append(b.conditions, Condition{Column: column, Op: OpEquals, Value: *value})
}

// Range appends a range condition when at least one bound is present. Bounds
// are taken verbatim; an inverted range simply matches no rows.
func Range[T any](b *Builder, column string, lo, hi *T) {
	if lo == nil && hi == nil {
		return
	}
	cond := Condition{Column: column, Op: OpRange}
	if lo != nil {
		cond.Lo = *lo
	}
	if hi != nil {
		cond.Hi = *hi
	}
	b.conditions = append(b.conditions, cond)
}

// Predicate returns the accumulated conjunction.
func (b *Builder) Predicate() Predicate {
	return Predicate(b.conditions)
}

// SQL renders the predicate as a positional-placeholder fragment starting at
// $next, e.g. "id_quiz = $1 AND score >= $2 AND score <= $3". An empty
// predicate renders the empty string with no arguments.
func (p Predicate) SQL(next int) (string, []interface{}) {
	if len(p) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(p))
	args := make([]interface{}, 0, len(p))
	for _, cond := range p {
		switch cond.Op {
		case OpEquals:
			parts = append(parts, fmt.Sprintf("%s = $%d", cond.Column, next))
			args = append(args, cond.Value)
			next++
		case OpRange:
			if cond.Lo != nil {
				parts = append(parts, fmt.Sprintf("%s >= $%d", cond.Column, next))
				args = append(args, cond.Lo)
				next++
			}
			if cond.Hi != nil {
				parts = append(parts, fmt.Sprintf("%s <= $%d", cond.Column, next))
				args = append(args, cond.Hi)
				next++
			}
		}
	}

	return strings.Join(parts, " AND "), args
}
