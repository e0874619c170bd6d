package handlers

import (
	"errors"
	"net/http"

	"github.com/rohits-web03/travelstory/internal/services"
	"github.com/rohits-web03/travelstory/internal/utils"
)

// Multipart parts beyond this are spooled to disk.
const multipartMemory = 1 << 20

// POST /image-upload
// UploadImage godoc
// @Summary Upload a story photo
// @Description Stores a single image under a server-chosen name and returns its URL.
// @Tags Images
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload "No image, not an image, or too large"
// @Router /image-upload [post]
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.ErrorResponse(w, http.StatusBadRequest, "Image is too large")
			return
		}
		utils.ErrorResponse(w, http.StatusBadRequest, "No image uploaded")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "No image uploaded")
		return
	}
	defer file.Close()

	imageURL, err := h.images.Upload(r.Context(), services.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
		Size:        header.Size,
	})
	if err != nil {
		h.fail(w, r, err, "")
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Error:    false,
		Message:  "Image uploaded successfully",
		ImageURL: imageURL,
	})
}

// DELETE /delete-image?imageUrl=
// DeleteImage godoc
// @Summary Delete an uploaded image
// @Description A missing file is reported with error=true but status 200.
// @Tags Images
// @Produce json
// @Security BearerAuth
// @Param imageUrl query string true "URL returned by image-upload"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload "Missing or invalid imageUrl"
// @Router /delete-image [delete]
func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	err := h.images.Delete(r.Context(), r.URL.Query().Get("imageUrl"))
	switch {
	case err == nil:
		utils.JSONResponse(w, http.StatusOK, utils.Payload{
			Error:   false,
			Message: "Image deleted successfully",
		})
	case errors.Is(err, services.ErrImageNotFound):
		utils.JSONResponse(w, http.StatusOK, utils.Payload{
			Error:   true,
			Message: "Image not found",
		})
	default:
		h.fail(w, r, err, "Image not found")
	}
}
