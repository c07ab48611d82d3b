package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

func newSubmissionRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	h := NewSubmissionHandler(service.NewSubmissionService(repository.NewSubmissionRepository(db), nil, nil))

	r := gin.New()
	h.Register(r.Group("/api/v1"), "/quiz-submissions")
	return r, mock
}

func submissionResultRows(graded time.Time) *sqlmock.Rows {
	score := 87.5
	feedback := "solid attempt"
	return sqlmock.NewRows([]string{
		"id_submission", "id_quiz", "id_student", "status", "score",
		"attempt_number", "started_at", "submitted_at", "greated_at",
		"feedback", "ai_feedback", "created_at", "updated_at",
	}).AddRow(
		"sub-1", "quiz-1", "student-1", "GRADED", score,
		1, graded.Add(-time.Hour), graded.Add(-30*time.Minute), graded,
		feedback, nil, graded.Add(-time.Hour), graded,
	)
}

// The gradedAt query range must hit the store's greated_at column, and a
// heavy listing must surface the feedback fields the light projection drops.
func TestListSubmissionsFiltersOnGradedRange(t *testing.T) {
	r, mock := newSubmissionRouter(t)
	mock.MatchExpectationsInOrder(false)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM quiz_submissions WHERE greated_at >= \$1 AND greated_at <= \$2 ORDER BY created_at DESC LIMIT 10 OFFSET 0`).
		WithArgs(start, end).
		WillReturnRows(submissionResultRows(start.Add(24 * time.Hour)))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM quiz_submissions WHERE greated_at >= \$1 AND greated_at <= \$2`).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	target := "/api/v1/quiz-submissions?gradedAtStart=2026-01-01T00:00:00Z&gradedAtEnd=2026-02-01T00:00:00Z&light=false"
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			IDSubmission string  `json:"idSubmission"`
			Status       string  `json:"status"`
			GradedAt     *string `json:"gradedAt"`
			Feedback     *string `json:"feedback"`
		} `json:"data"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "sub-1", body.Data[0].IDSubmission)
	assert.Equal(t, "GRADED", body.Data[0].Status)
	require.NotNil(t, body.Data[0].GradedAt)
	require.NotNil(t, body.Data[0].Feedback)
	assert.Equal(t, "solid attempt", *body.Data[0].Feedback)
	assert.Equal(t, 1, body.Total)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Light listings are the default and must not expose the heavy columns.
func TestListSubmissionsLightDropsFeedback(t *testing.T) {
	r, mock := newSubmissionRouter(t)
	mock.MatchExpectationsInOrder(false)

	graded := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT .+ FROM quiz_submissions ORDER BY created_at DESC LIMIT 10 OFFSET 0`).
		WillReturnRows(submissionResultRows(graded))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM quiz_submissions`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quiz-submissions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "solid attempt")
	assert.Contains(t, w.Body.String(), `"gradedAt"`)
	require.NoError(t, mock.ExpectationsWereMet())
}
