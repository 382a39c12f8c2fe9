package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrina-app/vitrina-backend/internal/errors"
	"github.com/vitrina-app/vitrina-backend/internal/imagehost"
	"github.com/vitrina-app/vitrina-backend/internal/middleware"
)

type UploadController struct {
	uploader imagehost.Uploader
}

func NewUploadController(uploader imagehost.Uploader) *UploadController {
	return &UploadController{uploader: uploader}
}

// UploadImages handles POST /api/v1/upload/images (admin)
// Accepts a multipart form with one or more "images" parts and returns
// the hosted URLs in the same order. The batch is all-or-nothing: one
// failed upload fails the request and no URLs are returned.
func (ctrl *UploadController) UploadImages(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	form, err := c.MultipartForm()
	if err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid multipart form: "+err.Error())
		return
	}

	headers := form.File["images"]
	if len(headers) == 0 {
		errors.BadRequest(c, errors.UploadNoFiles, "No images in the upload")
		return
	}

	files := make([]imagehost.File, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			errors.InternalError(c, "Could not read uploaded file "+header.Filename)
			return
		}
		defer f.Close()
		files = append(files, imagehost.File{
			Name:    header.Filename,
			Content: f,
		})
	}

	urls, err := imagehost.UploadAll(c.Request.Context(), ctrl.uploader, files)
	if err != nil {
		log.Error("Image batch upload failed", err, map[string]interface{}{
			"file_count": len(files),
		})
		errors.RespondWithError(c, http.StatusBadGateway, errors.UploadFailed, "Image upload failed; no images were saved")
		return
	}

	log.Info("Image batch uploaded", map[string]interface{}{
		"file_count": len(urls),
	})

	c.JSON(http.StatusOK, gin.H{
		"urls":  urls,
		"count": len(urls),
	})
}
