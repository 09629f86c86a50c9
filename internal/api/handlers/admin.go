package handlers

import (
	"net/http"

	"fileharbor/internal/utils"
)

// GET /api/admin/files
// AdminList godoc
// @Summary List every user's files
// @Description Returns all records across all owners. Admin only.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} FilesResponse
// @Failure 403 {object} utils.Payload
// @Router /api/admin/files [get]
func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	if !user.IsAdmin {
		utils.JSONError(w, http.StatusForbidden, "Admin only")
		return
	}

	items, err := h.files.Query(r.Context(), "", "")
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Database query failed")
		return
	}
	utils.JSONResponse(w, http.StatusOK, FilesResponse{Items: items})
}
