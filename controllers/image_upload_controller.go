package controllers

import (
	"log"
	"net/http"

	"github.com/ahmad-zhafir/ReFeed-sub001/services"
	"github.com/ahmad-zhafir/ReFeed-sub001/utils"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	Uploader *utils.S3Uploader
	Labels   *services.RekognitionService
}

func NewUploadController(uploader *utils.S3Uploader, labels *services.RekognitionService) *UploadController {
	return &UploadController{Uploader: uploader, Labels: labels}
}

type ListingImageRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// UploadListingImage stores a listing photo and returns its public URL,
// together with best-effort image labels for the client to show.
func (uc *UploadController) UploadListingImage(c *gin.Context) {
	if uc.Uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image uploads not configured"})
		return
	}

	var req ListingImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	url, err := uc.Uploader.UploadBase64Image(c.Request.Context(), req.ImageBase64, "listing-images")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	var labels []string
	if uc.Labels != nil {
		labels, err = uc.Labels.DetectListingLabels(c.Request.Context(), req.ImageBase64)
		if err != nil {
			log.Printf("label detection failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "labels": labels})
}
