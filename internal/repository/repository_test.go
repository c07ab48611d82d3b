package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/query"
)

func newMockRepo(t *testing.T) (*Repository[models.TagRow], sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewTagRepository(db), mock
}

func tagColumns() []string {
	return []string{"id_tag", "name", "slug", "color", "created_at", "updated_at"}
}

func tagRows(names ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows(tagColumns())
	now := time.Now()
	for i, name := range names {
		rows.AddRow("tag-"+name, name, name, nil, now.Add(time.Duration(i)*time.Minute), now)
	}
	return rows
}

func TestListRunsFetchAndCountConcurrently(t *testing.T) {
	repo, mock := newMockRepo(t)
	// The page fetch and the count run in parallel; their arrival order at
	// the driver is not deterministic.
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(`SELECT id_tag, name, slug, color, created_at, updated_at FROM tags WHERE name = \$1 ORDER BY name ASC LIMIT 10 OFFSET 0`).
		WithArgs("go").
		WillReturnRows(tagRows("go"))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tags WHERE name = \$1`).
		WithArgs("go").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	name := "go"
	var b query.Builder
	query.Equals(&b, "name", &name)

	sort := query.Sort{Fields: []query.Field{models.TagSortName}}
	rows, total, err := repo.List(context.Background(), b.Predicate(), sort)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 25, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmptyPredicateOmitsWhere(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(`SELECT id_tag, name, slug, color, created_at, updated_at FROM tags ORDER BY name ASC LIMIT 10 OFFSET 0`).
		WillReturnRows(tagRows("go", "sql"))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tags`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	rows, total, err := repo.List(context.Background(), nil, query.DefaultSort())
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, 2, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListFailsWholeCallWhenCountFails(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(`SELECT id_tag, name, slug, color, created_at, updated_at FROM tags`).
		WillReturnRows(tagRows("go"))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tags`).
		WillReturnError(sql.ErrConnDone)

	rows, total, err := repo.List(context.Background(), nil, query.DefaultSort())
	require.Error(t, err)
	assert.Nil(t, rows)
	assert.Zero(t, total)
}

func TestListRejectsUnknownSortField(t *testing.T) {
	repo, _ := newMockRepo(t)

	sort := query.Sort{Fields: []query.Field{"NOT_A_FIELD"}}
	_, _, err := repo.List(context.Background(), nil, sort)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOT_A_FIELD")
}

func TestFindByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id_tag, name, slug, color, created_at, updated_at FROM tags WHERE id_tag = \$1`).
		WithArgs("tag-go").
		WillReturnRows(tagRows("go"))

	row, err := repo.FindByID(context.Background(), "tag-go")
	require.NoError(t, err)
	assert.Equal(t, "go", row.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDMissingRowPropagatesErrNoRows(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM tags WHERE id_tag = \$1`).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(tagColumns()))

	_, err := repo.FindByID(context.Background(), "nope")
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestInsertGeneratesIDAndTimestamps(t *testing.T) {
	repo, mock := newMockRepo(t)

	// Columns render in sorted order: created_at, id_tag, name, slug, updated_at.
	mock.ExpectQuery(`INSERT INTO tags \(created_at, id_tag, name, slug, updated_at\) VALUES \(\$1, \$2, \$3, \$4, \$5\) RETURNING id_tag, name, slug, color, created_at, updated_at`).
		WillReturnRows(tagRows("go"))

	row, err := repo.Insert(context.Background(), map[string]interface{}{
		"name": "go",
		"slug": "go",
	})
	require.NoError(t, err)
	assert.Equal(t, "go", row.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTouchesOnlyProvidedColumns(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`UPDATE tags SET name = \$1, updated_at = \$2 WHERE id_tag = \$3 RETURNING id_tag, name, slug, color, created_at, updated_at`).
		WillReturnRows(tagRows("renamed"))

	row, err := repo.Update(context.Background(), "tag-go", map[string]interface{}{
		"name": "renamed",
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", row.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEmptyFieldSetDegradesToFetch(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id_tag, name, slug, color, created_at, updated_at FROM tags WHERE id_tag = \$1`).
		WithArgs("tag-go").
		WillReturnRows(tagRows("go"))

	row, err := repo.Update(context.Background(), "tag-go", nil)
	require.NoError(t, err)
	assert.Equal(t, "go", row.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMissingRowReturnsErrNoRows(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`UPDATE tags SET`).
		WillReturnRows(sqlmock.NewRows(tagColumns()))

	_, err := repo.Update(context.Background(), "nope", map[string]interface{}{"name": "x"})
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDelete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM tags WHERE id_tag = \$1`).
		WithArgs("tag-go").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "tag-go"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingRowReturnsErrNoRows(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM tags WHERE id_tag = \$1`).
		WithArgs("nope").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "nope")
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDescriptorValidate(t *testing.T) {
	valid := Descriptor{
		Table:    "things",
		IDColumn: "id_thing",
		Columns:  []string{"id_thing", "name"},
		SortColumns: query.FieldMapping{
			"NAME": "name",
		},
	}
	require.NoError(t, valid.Validate())

	missingID := valid
	missingID.IDColumn = "id_other"
	require.Error(t, missingID.Validate())

	badSort := valid
	badSort.SortColumns = query.FieldMapping{"NAME": "not_a_column"}
	require.Error(t, badSort.Validate())

	noColumns := valid
	noColumns.Columns = nil
	require.Error(t, noColumns.Validate())
}

func TestObserverReceivesTableAndOperation(t *testing.T) {
	repo, mock := newMockRepo(t)

	var gotTable, gotOp string
	repo.SetObserver(func(table, operation string, d time.Duration) {
		gotTable, gotOp = table, operation
	})

	mock.ExpectQuery(`SELECT .+ FROM tags WHERE id_tag = \$1`).
		WithArgs("tag-go").
		WillReturnRows(tagRows("go"))

	_, err := repo.FindByID(context.Background(), "tag-go")
	require.NoError(t, err)
	assert.Equal(t, "tags", gotTable)
	assert.Equal(t, "find", gotOp)
}
