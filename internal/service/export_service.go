package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/query"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/repository"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/pkg/config"
	appErrors "github.com/IETI-Group/SOPHIA-CourseService-sub001/pkg/errors"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/pkg/export"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/pkg/jobs"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/pkg/storage"
)

// Export job types.
const (
	exportCertificatePDF = "certificate_pdf"
	exportEnrollmentCSV  = "enrollment_csv"
)

// ExportState tracks an export job through its lifecycle.
type ExportState string

const (
	ExportPending ExportState = "PENDING"
	ExportReady   ExportState = "READY"
	ExportFailed  ExportState = "FAILED"
)

// ExportStatus is the public view of one export job.
type ExportStatus struct {
	ID            string      `json:"id"`
	Kind          string      `json:"kind"`
	State         ExportState `json:"state"`
	FileName      string      `json:"fileName,omitempty"`
	DownloadToken string      `json:"downloadToken,omitempty"`
	ExpiresAt     *time.Time  `json:"expiresAt,omitempty"`
	Error         string      `json:"error,omitempty"`
	RequestedAt   time.Time   `json:"requestedAt"`
}

// ExportService generates downloadable artifacts in the background:
// certificate PDFs and per-course enrollment CSVs. Artifacts live on local
// disk and are fetched with signed, expiring tokens.
type ExportService struct {
	certificates *repository.Repository[models.CertificateRow]
	courses      *repository.Repository[models.CourseRow]
	enrollments  *repository.Repository[models.EnrollmentRow]

	store   *storage.LocalStorage
	signer  *storage.SignedURLSigner
	queue   *jobs.Queue
	fileTTL time.Duration
	logger  *zap.Logger

	mu       sync.RWMutex
	statuses map[string]*ExportStatus
}

// NewExportService wires storage, signing, and the worker queue.
func NewExportService(
	cfg config.ExportConfig,
	certificates *repository.Repository[models.CertificateRow],
	courses *repository.Repository[models.CourseRow],
	enrollments *repository.Repository[models.EnrollmentRow],
	logger *zap.Logger,
) (*ExportService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	store, err := storage.NewLocalStorage(cfg.Dir)
	if err != nil {
		return nil, err
	}

	s := &ExportService{
		certificates: certificates,
		courses:      courses,
		enrollments:  enrollments,
		store:        store,
		signer:       storage.NewSignedURLSigner(cfg.SigningSecret, cfg.URLTTL),
		fileTTL:      cfg.FileTTL,
		logger:       logger,
		statuses:     make(map[string]*ExportStatus),
	}
	s.queue = jobs.NewQueue("exports", s.process, jobs.QueueConfig{
		Workers: cfg.Workers,
		Logger:  logger,
	})
	return s, nil
}

// Start launches the export workers and the stale-file sweeper.
func (s *ExportService) Start(ctx context.Context) {
	s.queue.Start(ctx)
	go s.sweep(ctx)
}

// Stop drains the export workers.
func (s *ExportService) Stop() {
	s.queue.Stop()
}

// EnqueueCertificatePDF schedules PDF generation for one certificate.
func (s *ExportService) EnqueueCertificatePDF(certificateID string) (ExportStatus, error) {
	return s.enqueue(exportCertificatePDF, certificateID)
}

// EnqueueEnrollmentCSV schedules a CSV dump of one course's enrollments.
func (s *ExportService) EnqueueEnrollmentCSV(courseID string) (ExportStatus, error) {
	return s.enqueue(exportEnrollmentCSV, courseID)
}

func (s *ExportService) enqueue(kind, target string) (ExportStatus, error) {
	if target == "" {
		return ExportStatus{}, appErrors.Clone(appErrors.ErrValidation, "export target id is required")
	}

	status := &ExportStatus{
		ID:          uuid.NewString(),
		Kind:        kind,
		State:       ExportPending,
		RequestedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	s.statuses[status.ID] = status
	s.mu.Unlock()

	err := s.queue.Enqueue(jobs.Job{ID: status.ID, Type: kind, Target: target})
	if err != nil {
		s.fail(status.ID, err)
		return ExportStatus{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to schedule export")
	}
	return *status, nil
}

// Status reports the state of one export job.
func (s *ExportService) Status(id string) (ExportStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status, ok := s.statuses[id]
	if !ok {
		return ExportStatus{}, appErrors.Clone(appErrors.ErrNotFound, "export not found")
	}
	return *status, nil
}

// ResolveDownload validates a signed token and returns the absolute file
// path plus the name the download should carry.
func (s *ExportService) ResolveDownload(token string) (absPath, name string, err error) {
	_, relPath, _, err := s.signer.Parse(token, false)
	if err != nil {
		return "", "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid or expired download token")
	}
	return s.store.Path(relPath), downloadName(relPath), nil
}

func (s *ExportService) process(ctx context.Context, job jobs.Job) error {
	target := job.Target

	var (
		relPath string
		err     error
	)
	switch job.Type {
	case exportCertificatePDF:
		relPath, err = s.renderCertificate(ctx, target)
	case exportEnrollmentCSV:
		relPath, err = s.renderEnrollmentCSV(ctx, target)
	default:
		err = fmt.Errorf("unknown export type %q", job.Type)
	}
	if err != nil {
		s.fail(job.ID, err)
		return nil
	}

	token, expiresAt, err := s.signer.Generate(job.ID, relPath)
	if err != nil {
		s.fail(job.ID, err)
		return nil
	}

	s.mu.Lock()
	if status, ok := s.statuses[job.ID]; ok {
		status.State = ExportReady
		status.FileName = relPath
		status.DownloadToken = token
		status.ExpiresAt = &expiresAt
		status.Error = ""
	}
	s.mu.Unlock()
	return nil
}

func (s *ExportService) renderCertificate(ctx context.Context, certificateID string) (string, error) {
	cert, err := s.certificates.FindByID(ctx, certificateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("certificate %s not found", certificateID)
		}
		return "", fmt.Errorf("load certificate: %w", err)
	}

	courseTitle := cert.IDCourse
	if course, err := s.courses.FindByID(ctx, cert.IDCourse); err == nil {
		courseTitle = course.Title
	}

	pdf, err := export.CertificatePDF(export.CertificateData{
		SerialNumber: cert.SerialNumber,
		CourseTitle:  courseTitle,
		StudentName:  cert.IDStudent,
		IssuedAt:     cert.IssuedAt,
	})
	if err != nil {
		return "", err
	}

	relPath := fmt.Sprintf("certificates/%s.pdf", cert.SerialNumber)
	return s.store.Save(relPath, pdf)
}

func (s *ExportService) renderEnrollmentCSV(ctx context.Context, courseID string) (string, error) {
	var b query.Builder
	query.Equals(&b, "id_course", &courseID)
	pred := b.Predicate()

	headers := []string{"id_enrollment", "id_student", "status", "progress_percent", "enrolled_at", "completed_at"}
	var rows [][]string

	sort := query.DefaultSort()
	sort.Size = query.MaxSize
	for {
		batch, _, err := s.enrollments.List(ctx, pred, sort)
		if err != nil {
			return "", fmt.Errorf("list enrollments: %w", err)
		}
		for _, e := range batch {
			completed := ""
			if e.CompletedAt != nil {
				completed = e.CompletedAt.UTC().Format(time.RFC3339)
			}
			rows = append(rows, []string{
				e.IDEnrollment,
				e.IDStudent,
				e.Status,
				fmt.Sprintf("%.2f", e.ProgressPercent),
				e.EnrolledAt.UTC().Format(time.RFC3339),
				completed,
			})
		}
		if len(batch) < sort.Size {
			break
		}
		sort.Page++
	}

	data, err := export.CSV(headers, rows)
	if err != nil {
		return "", err
	}

	relPath := fmt.Sprintf("enrollments/%s.csv", courseID)
	return s.store.Save(relPath, data)
}

func (s *ExportService) fail(id string, err error) {
	s.logger.Error("export failed", zap.String("export_id", id), zap.Error(err))
	s.mu.Lock()
	if status, ok := s.statuses[id]; ok {
		status.State = ExportFailed
		status.Error = err.Error()
	}
	s.mu.Unlock()
}

// sweep removes artifacts past their retention window.
func (s *ExportService) sweep(ctx context.Context) {
	if s.fileTTL <= 0 {
		return
	}
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := s.store.CleanupOlderThan(s.fileTTL)
			if err != nil {
				s.logger.Warn("export cleanup failed", zap.Error(err))
				continue
			}
			if len(deleted) > 0 {
				s.logger.Info("export cleanup", zap.Int("removed", len(deleted)))
			}
		}
	}
}

func downloadName(relPath string) string {
	for i := len(relPath) - 1; i >= 0; i-- {
		if relPath[i] == '/' {
			return relPath[i+1:]
		}
	}
	return relPath
}
