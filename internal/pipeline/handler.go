package pipeline

import (
	"context"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadFiles = 5

// TextExtractor is the OCR collaborator; per-file failures come back as
// empty strings, never as errors.
type TextExtractor interface {
	ExtractAll(ctx context.Context, files []*multipart.FileHeader, requestID string) []string
}

// Archiver optionally keeps a copy of uploaded photos for diagnostics.
type Archiver interface {
	Archive(ctx context.Context, key string, fh *multipart.FileHeader) (string, error)
}

type Handler struct {
	pipeline *Service
	ocr      TextExtractor
	archiver Archiver
}

// NewHandler wires the HTTP surface. archiver may be nil.
func NewHandler(pipeline *Service, ocr TextExtractor, archiver Archiver) *Handler {
	return &Handler{pipeline: pipeline, ocr: ocr, archiver: archiver}
}

// ProcessMenu handles POST /process-menu. Accepts either a raw "text"
// form field (pre-extracted OCR output) or up to 5 image files under
// "files". The response is always a well-formed MenuProcessingResult;
// degraded quality shows up only in confidences and flags.
func (h *Handler) ProcessMenu(c *gin.Context) {
	requestID := uuid.New().String()
	ctx := c.Request.Context()

	if text := c.PostForm("text"); strings.TrimSpace(text) != "" {
		log.Printf("[%s] processing raw text (%d bytes)", requestID, len(text))
		c.JSON(http.StatusOK, h.pipeline.Process(ctx, text, requestID))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
		return
	}
	if len(files) > maxUploadFiles {
		files = files[:maxUploadFiles]
	}

	log.Printf("[%s] received %d files for processing", requestID, len(files))

	h.archive(ctx, requestID, files)

	texts := h.ocr.ExtractAll(ctx, files, requestID)
	combined := strings.Join(texts, "\n\n")

	c.JSON(http.StatusOK, h.pipeline.Process(ctx, combined, requestID))
}

func (h *Handler) archive(ctx context.Context, requestID string, files []*multipart.FileHeader) {
	if h.archiver == nil {
		return
	}
	for _, fh := range files {
		key := "menus/" + requestID + "/" + uuid.New().String() + strings.ToLower(filepath.Ext(fh.Filename))
		if _, err := h.archiver.Archive(ctx, key, fh); err != nil {
			log.Printf("[%s] archive failed for %s: %v", requestID, fh.Filename, err)
		}
	}
}
