package v1

import (
	"net/http"
	"path/filepath"
	"strings"

	"surpriset-backend/pkg/logger"
	"surpriset-backend/pkg/storage"
	"surpriset-backend/pkg/utils"
)

var (
	allowedMimeTypes = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/webp": true,
		"image/gif":  true,
	}
	allowedExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".webp": true,
		".gif":  true,
	}
	// Upload destinations are fixed folders, not caller-supplied paths.
	allowedFolders = map[string]bool{
		"products":  true,
		"banners":   true,
		"packaging": true,
		"reviews":   true,
	}
)

type UploadHandler struct {
	storage       *storage.ObjectStorage
	maxUploadSize int64
}

func NewUploadHandler(s *storage.ObjectStorage, maxUploadSizeMB int64) *UploadHandler {
	return &UploadHandler{
		storage:       s,
		maxUploadSize: maxUploadSizeMB << 20, // MB to bytes
	}
}

func (h *UploadHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	log := logger.WithContext(r.Context())

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		log.Warn().Err(err).Msg("upload: multipart parse failed")
		utils.WriteError(w, http.StatusBadRequest, "File too large or invalid format")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid file")
		return
	}
	defer file.Close()

	folder := r.FormValue("folder")
	if folder == "" {
		folder = "products"
	}
	if !allowedFolders[folder] {
		utils.WriteError(w, http.StatusBadRequest, "Unknown upload folder")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedMimeTypes[contentType] {
		utils.WriteError(w, http.StatusBadRequest, "Invalid file type. Allowed: JPEG, PNG, WebP, GIF")
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		utils.WriteError(w, http.StatusBadRequest, "Invalid file extension")
		return
	}

	processedData, newContentType, err := utils.ProcessImage(file, header.Filename)
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("upload: image processing failed")
		utils.WriteError(w, http.StatusInternalServerError, "Failed to process image")
		return
	}

	url, err := h.storage.UploadBuffer(r.Context(), folder, processedData, newContentType)
	if err != nil {
		log.Error().Err(err).Msg("upload: object storage put failed")
		utils.WriteError(w, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"url": url})
}
