package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/dashapp/internal/common"
	"github.com/dmitrijs2005/dashapp/internal/server/services"
)

// maxAvatarSize caps avatar uploads at 5 MiB.
const maxAvatarSize = 5 << 20

// GetMe handles GET /api/v1/users/me.
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, detailInvalidToken)
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeDetail(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error(r.Context(), "get profile failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, detailInternal)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

type updateMeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateMe handles PUT /api/v1/users/me.
func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, detailInvalidToken)
		return
	}

	var req updateMeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), userID, req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			writeDetail(w, http.StatusBadRequest, detailEmailTaken)
		case errors.Is(err, common.ErrorNotFound):
			writeDetail(w, http.StatusNotFound, "User not found")
		default:
			h.logger.Error(r.Context(), "update profile failed", "error", err)
			writeDetail(w, http.StatusInternalServerError, detailInternal)
		}
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// UploadAvatar handles POST /api/v1/users/me/avatar. The body is multipart
// with the image under the "file" field.
func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, detailInvalidToken)
		return
	}

	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	defer file.Close()

	user, err := h.users.SaveAvatar(r.Context(), userID, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBadFileType):
			writeDetail(w, http.StatusBadRequest, detailBadFileType)
		case errors.Is(err, common.ErrorNotFound):
			writeDetail(w, http.StatusNotFound, "User not found")
		default:
			h.logger.Error(r.Context(), "avatar upload failed", "error", err)
			writeDetail(w, http.StatusInternalServerError, detailFileSaveFailed)
		}
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}
