package handlers

import (
	"context"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MediaUploader stores one file and returns its public URL.
// *storage.Uploader satisfies it; tests substitute a double.
type MediaUploader interface {
	Upload(ctx context.Context, r io.Reader, size int64, filename, contentType string) (string, error)
}

func UploadImage(uploader MediaUploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no image file provided"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			log.Printf("Failed to open uploaded file: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
			return
		}
		defer file.Close()

		ctx := c.Request.Context()
		url, err := uploader.Upload(ctx, file, fileHeader.Size,
			fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
		if err != nil {
			log.Printf("Upload error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}
