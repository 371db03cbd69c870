package handler

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	sheetapp "github.com/pricesheet/backend/internal/application/sheet"
	"github.com/pricesheet/backend/internal/infrastructure/logger"
)

// uploadField is the multipart form field carrying the spreadsheet
const uploadField = "file"

// Generator runs the price sheet pipeline on an uploaded spreadsheet
type Generator interface {
	Generate(ctx context.Context, path string) (*sheetapp.Artifacts, error)
}

// SheetHandler handles the price sheet upload endpoint
type SheetHandler struct {
	BaseHandler
	service Generator
	logger  *zap.Logger
}

// NewSheetHandler creates a new SheetHandler
func NewSheetHandler(service Generator, log *zap.Logger) *SheetHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SheetHandler{service: service, logger: log}
}

// UploadResponse is the flat JSON shape of a successful upload, with URLs
// relative to the static file root
type UploadResponse struct {
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl"`
	PDFURL   string `json:"pdfUrl"`
}

// Upload accepts one spreadsheet under the "file" form field, stores it at
// a uniquely named temp path and runs the pipeline. A missing file is a
// plain-text 400 and the pipeline never runs.
func (h *SheetHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile(uploadField)
	if err != nil {
		c.String(http.StatusBadRequest, "No file uploaded.")
		return
	}
	defer func() { _ = file.Close() }()

	path, err := h.saveUpload(file, header.Filename)
	if err != nil {
		h.logger.Error("failed to store upload", zap.Error(err))
		h.InternalError(c, "failed to store uploaded file")
		return
	}

	artifacts, err := h.service.Generate(c.Request.Context(), path)
	if err != nil {
		logger.GetGinLogger(c).Error("pipeline failed",
			zap.String("filename", header.Filename),
			zap.Error(err))
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, UploadResponse{
		Message:  "Price sheet generated",
		ImageURL: artifacts.ImageURL,
		PDFURL:   artifacts.PDFURL,
	})
}

// saveUpload copies the multipart file to a uuid-named path in the OS temp
// dir, preserving the original extension for the spreadsheet reader
func (h *SheetHandler) saveUpload(file io.Reader, filename string) (string, error) {
	path := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(filename))

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, file); err != nil {
		_ = dst.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}

// RegisterRoutes registers the upload route
func (h *SheetHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.Upload)
}
