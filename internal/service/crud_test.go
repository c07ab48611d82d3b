package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/dto"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/query"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/repository"
	appErrors "github.com/IETI-Group/SOPHIA-CourseService-sub001/pkg/errors"
)

func newTagService(t *testing.T) (*TagService, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewTagService(repository.NewTagRepository(db), nil, nil), mock
}

func mockTagRows(names ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id_tag", "name", "slug", "color", "created_at", "updated_at"})
	now := time.Now()
	for _, name := range names {
		rows.AddRow("tag-"+name, name, name, nil, now, now)
	}
	return rows
}

func TestCrudListProjectsRows(t *testing.T) {
	svc, mock := newTagService(t)
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tags`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT .+ FROM tags`).WillReturnRows(mockTagRows("go", "sql"))

	out, total, err := svc.List(context.Background(), nil, query.DefaultSort(), true)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	require.Len(t, out, 2)
	assert.Equal(t, "go", out[0].Name)
	assert.Equal(t, "sql", out[1].Name)
}

func TestCrudListWrapsStoreFailure(t *testing.T) {
	svc, mock := newTagService(t)
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(`SELECT .+ FROM tags`).WillReturnError(assert.AnError)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tags`).WillReturnError(assert.AnError)

	_, _, err := svc.List(context.Background(), nil, query.DefaultSort(), true)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrStoreUnavailable.Code, appErr.Code)
}

func TestCrudGetMissingRowIsNotFound(t *testing.T) {
	svc, mock := newTagService(t)

	mock.ExpectQuery(`SELECT .+ FROM tags WHERE id_tag = \$1`).
		WithArgs("nope").
		WillReturnRows(mockTagRows())

	_, err := svc.Get(context.Background(), "nope", true)
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
}

func TestCrudGet(t *testing.T) {
	svc, mock := newTagService(t)

	mock.ExpectQuery(`SELECT .+ FROM tags WHERE id_tag = \$1`).
		WithArgs("tag-go").
		WillReturnRows(mockTagRows("go"))

	out, err := svc.Get(context.Background(), "tag-go", true)
	require.NoError(t, err)
	assert.Equal(t, "go", out.Name)
}

func TestCrudCreateValidates(t *testing.T) {
	svc, _ := newTagService(t)

	_, err := svc.Create(context.Background(), dto.CreateTagInput{}, true)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestCrudCreate(t *testing.T) {
	svc, mock := newTagService(t)

	mock.ExpectQuery(`INSERT INTO tags .+ RETURNING`).
		WillReturnRows(mockTagRows("go"))

	out, err := svc.Create(context.Background(), dto.CreateTagInput{Name: "go", Slug: "go"}, true)
	require.NoError(t, err)
	assert.Equal(t, "go", out.Name)
	assert.NotEmpty(t, out.IDTag)
}

func TestCrudUpdateMissingRowIsNotFound(t *testing.T) {
	svc, mock := newTagService(t)

	mock.ExpectQuery(`UPDATE tags SET`).
		WillReturnRows(mockTagRows())

	name := "renamed"
	_, err := svc.Update(context.Background(), "nope", dto.UpdateTagInput{Name: &name}, true)
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
}

func TestCrudDeleteMissingRowIsNotFound(t *testing.T) {
	svc, mock := newTagService(t)

	mock.ExpectExec(`DELETE FROM tags WHERE id_tag = \$1`).
		WithArgs("nope").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.Delete(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
}

func TestCrudDelete(t *testing.T) {
	svc, mock := newTagService(t)

	mock.ExpectExec(`DELETE FROM tags WHERE id_tag = \$1`).
		WithArgs("tag-go").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.Delete(context.Background(), "tag-go"))
}
