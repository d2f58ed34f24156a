package uploads

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joglo66/fleet-backend/pkg/logger"
)

// presignTTL bounds how long returned download links stay valid.
const presignTTL = 24 * time.Hour

// ObjectStore is the slice of the blob backend the handler needs; satisfied
// by storage.Client.
type ObjectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, int64, string, error)
	PresignedURL(ctx context.Context, key string, expires time.Duration) (string, error)
}

// Handler stores and serves receipt/photo/document files. The returned key is
// what callers put into fields like receipt_url.
type Handler struct {
	store ObjectStore
}

func NewHandler(store ObjectStore) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/uploads", h.Upload)
	rg.GET("/uploads/:key", h.Download)
}

func (h *Handler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	key := fmt.Sprintf("%s-%s", uuid.NewString(), fh.Filename)
	contentType := fh.Header.Get("Content-Type")
	if err := h.store.Upload(c.Request.Context(), key, f, fh.Size, contentType); err != nil {
		logger.Errorf("upload %s failed: %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	url, err := h.store.PresignedURL(c.Request.Context(), key, presignTTL)
	if err != nil {
		logger.Warnf("presign %s failed: %v", key, err)
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "url": url})
}

func (h *Handler) Download(c *gin.Context) {
	key := c.Param("key")
	obj, size, contentType, err := h.store.Download(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	defer obj.Close()
	c.DataFromReader(http.StatusOK, size, contentType, obj, nil)
}
