package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string       { return &s }
func floatPtr(f float64) *float64   { return &f }
func intPtrVal(i int) *int          { return &i }

func TestEmptyPredicateMatchesAll(t *testing.T) {
	var b Builder
	Equals[string](&b, "status", nil)
	Range[float64](&b, "score", nil, nil)

	pred := b.Predicate()
	require.Empty(t, pred)

	sql, args := pred.SQL(1)
	assert.Equal(t, "", sql)
	assert.Empty(t, args)
}

func TestEqualsSkipsAbsentValues(t *testing.T) {
	var b Builder
	Equals(&b, "status", strPtr("GRADED"))
	Equals[string](&b, "id_student", nil)
	Equals(&b, "id_quiz", strPtr("q-1"))

	sql, args := b.Predicate().SQL(1)
	assert.Equal(t, "status = $1 AND id_quiz = $2", sql)
	assert.Equal(t, []interface{}{"GRADED", "q-1"}, args)
}

func TestRangeBounds(t *testing.T) {
	tests := []struct {
		name     string
		lo, hi   *float64
		wantSQL  string
		wantArgs []interface{}
	}{
		{"min only", floatPtr(50), nil, "score >= $1", []interface{}{50.0}},
		{"max only", nil, floatPtr(90), "score <= $1", []interface{}{90.0}},
		{"both", floatPtr(50), floatPtr(90), "score >= $1 AND score <= $2", []interface{}{50.0, 90.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Builder
			Range(&b, "score", tt.lo, tt.hi)
			sql, args := b.Predicate().SQL(1)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestInvertedRangeRendersVerbatim(t *testing.T) {
	var b Builder
	Range(&b, "attempt_number", intPtrVal(5), intPtrVal(2))

	sql, args := b.Predicate().SQL(1)
	assert.Equal(t, "attempt_number >= $1 AND attempt_number <= $2", sql)
	assert.Equal(t, []interface{}{5, 2}, args)
}

func TestPlaceholderNumberingStartsAtNext(t *testing.T) {
	var b Builder
	Equals(&b, "id_course", strPtr("c-1"))
	Range(&b, "progress_percent", floatPtr(10), floatPtr(80))

	sql, args := b.Predicate().SQL(3)
	assert.Equal(t, "id_course = $3 AND progress_percent >= $4 AND progress_percent <= $5", sql)
	assert.Len(t, args, 3)
}

func TestConditionOrderFollowsInsertion(t *testing.T) {
	var b Builder
	Equals(&b, "id_quiz", strPtr("q-1"))
	Equals(&b, "status", strPtr("SUBMITTED"))
	Range(&b, "score", floatPtr(0), nil)

	pred := b.Predicate()
	require.Len(t, pred, 3)
	assert.Equal(t, "id_quiz", pred[0].Column)
	assert.Equal(t, "status", pred[1].Column)
	assert.Equal(t, "score", pred[2].Column)
}
