package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMapping = FieldMapping{
	"SCORE":      "score",
	"STATUS":     "status",
	"CREATED_AT": "created_at",
}

func TestParseDirection(t *testing.T) {
	assert.Equal(t, Descending, ParseDirection("desc"))
	assert.Equal(t, Descending, ParseDirection("DESC"))
	assert.Equal(t, Ascending, ParseDirection("asc"))
	assert.Equal(t, Ascending, ParseDirection(""))
	assert.Equal(t, Ascending, ParseDirection("sideways"))
}

func TestFieldMappingValidate(t *testing.T) {
	require.NoError(t, testMapping.Validate("SCORE", "STATUS"))

	err := testMapping.Validate("SCORE", "UNKNOWN")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNKNOWN")
}

func TestSortNormalizeDefaults(t *testing.T) {
	s := Sort{}
	s.Normalize()
	assert.Equal(t, DefaultPage, s.Page)
	assert.Equal(t, DefaultSize, s.Size)
	assert.Equal(t, Ascending, s.Direction)
}

func TestSortNormalizeClampsSize(t *testing.T) {
	s := Sort{Page: 2, Size: 500, Direction: Descending}
	s.Normalize()
	assert.Equal(t, 2, s.Page)
	assert.Equal(t, MaxSize, s.Size)
	assert.Equal(t, Descending, s.Direction)

	s = Sort{Page: -3, Size: -1}
	s.Normalize()
	assert.Equal(t, DefaultPage, s.Page)
	assert.Equal(t, DefaultSize, s.Size)
}

func TestBuildOrderPreservesRequestOrder(t *testing.T) {
	sort := Sort{
		Fields:    []Field{"STATUS", "SCORE", "CREATED_AT"},
		Direction: Descending,
	}

	clauses, err := BuildOrder(sort, testMapping)
	require.NoError(t, err)
	require.Len(t, clauses, 3)
	assert.Equal(t, "status", clauses[0].Column)
	assert.Equal(t, "score", clauses[1].Column)
	assert.Equal(t, "created_at", clauses[2].Column)
	for _, c := range clauses {
		assert.Equal(t, Descending, c.Direction)
	}
}

func TestBuildOrderKeepsDuplicates(t *testing.T) {
	sort := Sort{
		Fields:    []Field{"SCORE", "SCORE"},
		Direction: Ascending,
	}

	clauses, err := BuildOrder(sort, testMapping)
	require.NoError(t, err)
	require.Len(t, clauses, 2)
	assert.Equal(t, clauses[0], clauses[1])
}

func TestBuildOrderUnknownField(t *testing.T) {
	sort := Sort{Fields: []Field{"SCORE", "NOPE"}}
	_, err := BuildOrder(sort, testMapping)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOPE")
}

func TestBuildOrderEmptyYieldsStoreDefault(t *testing.T) {
	clauses, err := BuildOrder(Sort{}, testMapping)
	require.NoError(t, err)
	assert.Nil(t, clauses)
	assert.Equal(t, "", OrderSQL(clauses))
}

func TestOrderSQL(t *testing.T) {
	sql := OrderSQL([]OrderClause{
		{Column: "score", Direction: Descending},
		{Column: "status", Direction: Descending},
	})
	assert.Equal(t, "score DESC, status DESC", sql)
}
