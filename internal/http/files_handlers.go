package http

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront-api/internal/storage"
)

// defaultImage is the placeholder shown for accounts and products without an
// uploaded picture. It can never be deleted.
const defaultImage = "default_user.png"

func imageKind(c *gin.Context) (string, bool) {
	kind := c.Param("kind")
	if kind != "user" && kind != "product" {
		fail(c, http.StatusNotFound, "unknown upload kind")
		return "", false
	}
	return kind, true
}

func (h *Handler) objectKey(kind, filename string) string {
	return path.Join(h.keyPrefix, kind, filename)
}

func (h *Handler) uploadFile(c *gin.Context) {
	kind, ok := imageKind(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, "no file to upload")
		return
	}

	name := filepath.Base(fileHeader.Filename)
	if name == "" || name == "." {
		name = uuid.NewString()
	}
	storedName := fmt.Sprintf("%d_%s", time.Now().Unix(), name)

	file, err := fileHeader.Open()
	if err != nil {
		fail(c, http.StatusBadRequest, "unreadable upload")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if err := h.storage.SaveObject(c.Request.Context(), h.bucket, h.objectKey(kind, storedName), contentType, file); err != nil {
		h.logger.WithError(err).Error("save upload failed")
		fail(c, http.StatusInternalServerError, "request failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"file_name":      storedName,
		"file_extension": filepath.Ext(storedName),
	})
}

func (h *Handler) downloadFile(c *gin.Context) {
	kind, ok := imageKind(c)
	if !ok {
		return
	}
	filename := filepath.Base(c.Param("filename"))

	data, contentType, err := h.storage.ReadObject(c.Request.Context(), h.bucket, h.objectKey(kind, filename))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			fail(c, http.StatusNotFound, "file not found")
			return
		}
		h.logger.WithError(err).Error("read file failed")
		fail(c, http.StatusInternalServerError, "request failed")
		return
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, data)
}

func (h *Handler) deleteFile(c *gin.Context) {
	kind, ok := imageKind(c)
	if !ok {
		return
	}
	filename := filepath.Base(c.Param("filename"))

	if filename == defaultImage {
		fail(c, http.StatusNotFound, "cannot delete the default file")
		return
	}

	if err := h.storage.DeleteObject(c.Request.Context(), h.bucket, h.objectKey(kind, filename)); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			fail(c, http.StatusNotFound, "file not found")
			return
		}
		h.logger.WithError(err).Error("delete file failed")
		fail(c, http.StatusInternalServerError, "request failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "file deleted"})
}
