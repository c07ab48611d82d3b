package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/repository"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTagRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	h := NewTagHandler(service.NewTagService(repository.NewTagRepository(db), nil, nil))

	r := gin.New()
	h.Register(r.Group("/api/v1"), "/tags")
	return r, mock
}

func tagResultRows(names ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id_tag", "name", "slug", "color", "created_at", "updated_at"})
	now := time.Now()
	for _, name := range names {
		rows.AddRow("tag-"+name, name, name, nil, now, now)
	}
	return rows
}

func TestListReturnsPaginatedEnvelope(t *testing.T) {
	r, mock := newTagRouter(t)
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(`SELECT .+ FROM tags WHERE name = \$1 ORDER BY name DESC LIMIT 5 OFFSET 5`).
		WithArgs("go").
		WillReturnRows(tagResultRows("go"))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tags WHERE name = \$1`).
		WithArgs("go").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tags?name=go&page=2&size=5&sortField=NAME&sortDirection=DESC", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success    bool              `json:"success"`
		Data       []json.RawMessage `json:"data"`
		Page       int               `json:"page"`
		Size       int               `json:"size"`
		Total      int               `json:"total"`
		TotalPages int               `json:"totalPages"`
		HasNext    bool              `json:"hasNext"`
		HasPrev    bool              `json:"hasPrev"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data, 1)
	assert.Equal(t, 2, body.Page)
	assert.Equal(t, 5, body.Size)
	assert.Equal(t, 11, body.Total)
	assert.Equal(t, 3, body.TotalPages)
	assert.True(t, body.HasNext)
	assert.True(t, body.HasPrev)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListRejectsUnknownSortField(t *testing.T) {
	r, _ := newTagRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tags?sortField=SHOE_SIZE", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "SHOE_SIZE")
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestGetMissingRowReturns404(t *testing.T) {
	r, mock := newTagRouter(t)

	mock.ExpectQuery(`SELECT .+ FROM tags WHERE id_tag = \$1`).
		WithArgs("nope").
		WillReturnRows(tagResultRows())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tags/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestCreateReturns201(t *testing.T) {
	r, mock := newTagRouter(t)

	mock.ExpectQuery(`INSERT INTO tags .+ RETURNING`).
		WillReturnRows(tagResultRows("go"))

	payload := `{"name":"go","slug":"go"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tags", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"idTag":"tag-go"`)
}

func TestCreateRejectsInvalidPayload(t *testing.T) {
	r, _ := newTagRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tags", strings.NewReader(`{"name":"go"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestUpdateReturnsUpdatedEntity(t *testing.T) {
	r, mock := newTagRouter(t)

	mock.ExpectQuery(`UPDATE tags SET`).
		WillReturnRows(tagResultRows("renamed"))

	req := httptest.NewRequest(http.MethodPut, "/api/v1/tags/tag-go", strings.NewReader(`{"name":"renamed"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"renamed"`)
}

func TestDeleteReturnsAcknowledgement(t *testing.T) {
	r, mock := newTagRouter(t)

	mock.ExpectExec(`DELETE FROM tags WHERE id_tag = \$1`).
		WithArgs("tag-go").
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/tags/tag-go", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}
