package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IETI-Group/SOPHIA-CourseService-sub001/internal/service"
	appErrors "github.com/IETI-Group/SOPHIA-CourseService-sub001/pkg/errors"
	"github.com/IETI-Group/SOPHIA-CourseService-sub001/pkg/response"
)

// ExportHandler exposes background export endpoints.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Register mounts the export routes under the given group.
func (h *ExportHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/certificates/:id/pdf", h.CertificatePDF)
	rg.POST("/enrollments/csv", h.EnrollmentCSV)
	rg.GET("/jobs/:id", h.Status)
	rg.GET("/files/:token", h.Download)
}

// CertificatePDF godoc
// @Summary Schedule certificate PDF generation
// @Produce json
// @Param id path string true "Certificate ID"
// @Success 202 {object} response.Envelope
func (h *ExportHandler) CertificatePDF(c *gin.Context) {
	status, err := h.exports.EnqueueCertificatePDF(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, response.Single(status, "certificate export scheduled"))
}

// EnrollmentCSV godoc
// @Summary Schedule a CSV dump of a course's enrollments
// @Produce json
// @Param idCourse query string true "Course ID"
// @Success 202 {object} response.Envelope
func (h *ExportHandler) EnrollmentCSV(c *gin.Context) {
	courseID := c.Query("idCourse")
	if courseID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "idCourse is required"))
		return
	}
	status, err := h.exports.EnqueueEnrollmentCSV(courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, response.Single(status, "enrollment export scheduled"))
}

// Status godoc
// @Summary Get export job status
// @Produce json
// @Param id path string true "Export job ID"
// @Success 200 {object} response.Envelope
func (h *ExportHandler) Status(c *gin.Context) {
	status, err := h.exports.Status(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, response.Single(status, "export status retrieved"))
}

// Download godoc
// @Summary Download a generated export
// @Produce application/octet-stream
// @Param token path string true "Signed download token"
// @Success 200 {file} binary
func (h *ExportHandler) Download(c *gin.Context) {
	path, name, err := h.exports.ResolveDownload(c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.FileAttachment(path, name)
}
