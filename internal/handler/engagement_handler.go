package handler

import (
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/dto"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/models"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/service"
)

// CommentHandler exposes lesson comment endpoints.
type CommentHandler = Crud[models.CommentFilter, models.CommentRow, dto.Comment, dto.CreateCommentInput, dto.UpdateCommentInput]

// NewCommentHandler constructs CommentHandler.
func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return NewCrud[models.CommentFilter](svc)
}

// ReviewHandler exposes course review endpoints.
type ReviewHandler = Crud[models.ReviewFilter, models.ReviewRow, dto.Review, dto.CreateReviewInput, dto.UpdateReviewInput]

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(svc *service.ReviewService) *ReviewHandler {
	return NewCrud[models.ReviewFilter](svc)
}

// CertificateHandler exposes certificate endpoints.
type CertificateHandler = Crud[models.CertificateFilter, models.CertificateRow, dto.Certificate, dto.CreateCertificateInput, dto.UpdateCertificateInput]

// NewCertificateHandler constructs CertificateHandler.
func NewCertificateHandler(svc *service.CertificateService) *CertificateHandler {
	return NewCrud[models.CertificateFilter](svc)
}
