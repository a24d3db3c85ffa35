package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/middleware"
	"github.com/soloflowhq/soloflow-api/internal/models"
	"github.com/soloflowhq/soloflow-api/internal/storage"
)

const maxAvatarBytes = 5 << 20

type AvatarHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewAvatarHandler(db *gorm.DB, uploader *storage.Uploader) *AvatarHandler {
	return &AvatarHandler{db: db, uploader: uploader}
}

// Upload accepts a multipart "file" field, converts it to WebP and stores it
// in object storage, then records the URL on the profile.
func (h *AvatarHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		httperr.Internal(c, "storage_not_configured", "Image storage is not configured.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)

	file, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "A file field is required.")
		return
	}
	if file.Size > maxAvatarBytes {
		httperr.BadRequest(c, "file_too_large", "Image exceeds the 5MB limit.")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Could not read the upload.")
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxAvatarBytes+1))
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Could not read the upload.")
		return
	}

	url, err := h.uploader.UploadAvatar(c.Request.Context(), raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Only JPEG and PNG images are supported.")
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("avatar_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Could not save avatar.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
