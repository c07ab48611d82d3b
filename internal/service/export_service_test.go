package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/repository"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/pkg/config"
	appErrors "github.com/IETI-Group/SOPHIA-CourseService-sub001/pkg/errors"
)

func newExportService(t *testing.T) (*ExportService, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	db := sqlx.NewDb(mockDB, "sqlmock")

	svc, err := NewExportService(config.ExportConfig{
		Dir:           t.TempDir(),
		SigningSecret: "test-secret",
		URLTTL:        time.Hour,
		Workers:       1,
	},
		repository.NewCertificateRepository(db),
		repository.NewCourseRepository(db),
		repository.NewEnrollmentRepository(db),
		nil,
	)
	require.NoError(t, err)
	return svc, mock
}

func TestExportStatusUnknownIDIsNotFound(t *testing.T) {
	svc, _ := newExportService(t)

	_, err := svc.Status("missing")
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
}

func TestExportEnqueueRequiresTarget(t *testing.T) {
	svc, _ := newExportService(t)

	_, err := svc.EnqueueCertificatePDF("")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestExportEnqueueBeforeStartFails(t *testing.T) {
	svc, _ := newExportService(t)

	status, err := svc.EnqueueCertificatePDF("cert-1")
	require.Error(t, err)
	assert.Empty(t, status.ID)
}

func TestExportEnrollmentCSVLifecycle(t *testing.T) {
	svc, mock := newExportService(t)
	mock.MatchExpectationsInOrder(false)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id_enrollment", "id_course", "id_student", "status",
		"progress_percent", "enrolled_at", "completed_at", "created_at", "updated_at",
	}).AddRow("e-1", "course-1", "student-1", "ACTIVE", 42.5, now, nil, now, now)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM enrollments WHERE id_course = \$1`).
		WithArgs("course-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .+ FROM enrollments WHERE id_course = \$1`).
		WithArgs("course-1").
		WillReturnRows(rows)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)
	defer svc.Stop()

	status, err := svc.EnqueueEnrollmentCSV("course-1")
	require.NoError(t, err)
	require.NotEmpty(t, status.ID)
	assert.Equal(t, ExportPending, status.State)

	require.Eventually(t, func() bool {
		s, err := svc.Status(status.ID)
		return err == nil && s.State == ExportReady
	}, 3*time.Second, 20*time.Millisecond)

	done, err := svc.Status(status.ID)
	require.NoError(t, err)
	assert.Equal(t, "enrollments/course-1.csv", done.FileName)
	require.NotEmpty(t, done.DownloadToken)

	path, name, err := svc.ResolveDownload(done.DownloadToken)
	require.NoError(t, err)
	assert.Equal(t, "course-1.csv", name)
	assert.Equal(t, "course-1.csv", filepath.Base(path))
}

func TestExportResolveDownloadRejectsBadToken(t *testing.T) {
	svc, _ := newExportService(t)

	_, _, err := svc.ResolveDownload("not-a-token")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
