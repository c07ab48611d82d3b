package service

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/dto"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/repository"
)

// CommentService handles lesson comment use-cases.
type CommentService = Crud[models.CommentRow, dto.Comment, dto.CreateCommentInput, dto.UpdateCommentInput]

// NewCommentService constructs the comment service.
func NewCommentService(repo *repository.Repository[models.CommentRow], validate *validator.Validate, logger *zap.Logger) *CommentService {
	return NewCrud("comment", repo, dto.CommentFromRow,
		dto.CreateCommentInput.StoreFields, dto.UpdateCommentInput.StoreFields,
		validate, logger)
}

// ReviewService handles course review use-cases.
type ReviewService = Crud[models.ReviewRow, dto.Review, dto.CreateReviewInput, dto.UpdateReviewInput]

// NewReviewService constructs the review service.
func NewReviewService(repo *repository.Repository[models.ReviewRow], validate *validator.Validate, logger *zap.Logger) *ReviewService {
	return NewCrud("review", repo, dto.ReviewFromRow,
		dto.CreateReviewInput.StoreFields, dto.UpdateReviewInput.StoreFields,
		validate, logger)
}

// CertificateService handles certificate use-cases.
type CertificateService = Crud[models.CertificateRow, dto.Certificate, dto.CreateCertificateInput, dto.UpdateCertificateInput]

// NewCertificateService constructs the certificate service.
func NewCertificateService(repo *repository.Repository[models.CertificateRow], validate *validator.Validate, logger *zap.Logger) *CertificateService {
	return NewCrud("certificate", repo, dto.CertificateFromRow,
		dto.CreateCertificateInput.StoreFields, dto.UpdateCertificateInput.StoreFields,
		validate, logger)
}
