package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/careerpath/internal/domain/errors"
	"github.com/polkiloo/careerpath/internal/domain/model"
	"github.com/polkiloo/careerpath/internal/server/http/middleware"
)

const resumeFormField = "resume"

// ResumeHandler accepts resume uploads and forwards them to the parser.
type ResumeHandler struct {
	facade    ResumeFacade
	uploadDir string
	maxSize   int64
}

// NewResumeHandler creates ResumeHandler storing files in uploadDir.
func NewResumeHandler(facade ResumeFacade, uploadDir string, maxSize int64) *ResumeHandler {
	return &ResumeHandler{facade: facade, uploadDir: uploadDir, maxSize: maxSize}
}

// Upload handles POST /api/resume/upload.
// The stored file is removed once parsing completes.
func (h *ResumeHandler) Upload(c *gin.Context) {
	if h.maxSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxSize)
	}

	header, err := c.FormFile(resumeFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			middleware.AbortWithMessage(c, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		middleware.AbortWithError(c, domainErrors.NewValidationError(resumeFormField, "file is required"))
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o750); err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	stored := uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
	path := filepath.Join(h.uploadDir, stored)
	if err := c.SaveUploadedFile(header, path); err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	defer os.Remove(path)

	res, err := h.facade.UploadResume(c.Request.Context(), model.UploadedFile{
		Path:     path,
		Filename: stored,
		MimeType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
