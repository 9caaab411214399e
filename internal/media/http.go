package media

import (
	"net/http"

	"github.com/abduss/mediarepo/internal/metrics"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the upload and listing endpoints under the provided
// router group. The group is expected to carry the API key middleware.
func RegisterRoutes(group *gin.RouterGroup, service *Service) {
	handler := &httpHandler{service: service}
	for _, cat := range Categories {
		group.POST("/upload/"+cat.Field(), handler.uploadFor(cat))
	}
	group.GET("/api/files", handler.listFiles)
}

type httpHandler struct {
	service *Service
}

func (h *httpHandler) uploadFor(cat Category) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile(cat.Field())
		if err != nil {
			c.String(http.StatusBadRequest, "No %s file uploaded", cat.Field())
			return
		}

		item, err := h.service.Upload(c.Request.Context(), cat, fileHeader)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file"})
			return
		}

		metrics.ObserveUpload(cat.Field())
		c.JSON(http.StatusOK, gin.H{
			"message": uploadedMessage(cat),
			"url":     item.URL,
		})
	}
}

func (h *httpHandler) listFiles(c *gin.Context) {
	listing, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to list files")
		return
	}

	metrics.ObserveListing()
	c.JSON(http.StatusOK, listing)
}

func uploadedMessage(cat Category) string {
	switch cat {
	case CategoryMusic:
		return "Music uploaded successfully"
	case CategoryVideo:
		return "Video uploaded successfully"
	default:
		return "Uploaded successfully"
	}
}
