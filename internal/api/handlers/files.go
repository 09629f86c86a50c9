package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"fileharbor/internal/models"
	"fileharbor/internal/repositories"
	"fileharbor/internal/storage"
	"fileharbor/internal/utils"
)

const maxUploadSize = 100 << 20 // 100 MB

// POST /api/files
// Upload godoc
// @Summary Upload one or more files
// @Description Stores each file in object storage and records its metadata. Only json, txt and pdf files are accepted.
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param files formData file true "Files to upload" style(form) explode(true)
// @Success 200 {object} FilesResponse
// @Failure 400 {object} utils.Payload
// @Router /api/files [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid file upload form")
		return
	}

	formFiles := r.MultipartForm.File["files"]
	if len(formFiles) == 0 {
		utils.JSONError(w, http.StatusBadRequest, "No files provided")
		return
	}

	items := make([]models.FileRecord, 0, len(formFiles))
	for _, fh := range formFiles {
		// Rejection aborts the request; files stored in earlier
		// iterations stay stored.
		if !storage.ExtOK(fh.Filename) {
			utils.JSONError(w, http.StatusBadRequest, fmt.Sprintf("Unsupported file: %s", fh.Filename))
			return
		}

		src, err := fh.Open()
		if err != nil {
			utils.JSONError(w, http.StatusBadRequest, fmt.Sprintf("Unable to read file: %s", fh.Filename))
			return
		}

		contentType := fh.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		key := storage.ObjectKey(user.UID, fh.Filename)
		size, err := h.store.Put(r.Context(), key, src, contentType)
		src.Close()
		if err != nil {
			utils.JSONError(w, http.StatusInternalServerError, "Failed to store files")
			return
		}

		rec := models.FileRecord{
			UID:       user.UID,
			Name:      fh.Filename,
			NameLower: strings.ToLower(fh.Filename),
			Type:      storage.Ext(fh.Filename),
			Size:      size,
			ObjectKey: key,
			CreatedAt: time.Now().UTC(),
		}
		if err := h.files.Create(r.Context(), &rec); err != nil {
			utils.JSONError(w, http.StatusInternalServerError, "Failed to record file metadata")
			return
		}
		items = append(items, rec)
	}

	utils.JSONResponse(w, http.StatusOK, FilesResponse{Items: items})
}

// GET /api/files
// List godoc
// @Summary List own files
// @Description Returns the caller's files, optionally filtered by type and name substring.
// @Tags Files
// @Produce json
// @Security BearerAuth
// @Param sort query string false "Sort key: date or size" default(date)
// @Param order query string false "Sort order: asc or desc" default(desc)
// @Param ftype query string false "Exact type filter: json, txt or pdf"
// @Param q query string false "Case-insensitive name substring"
// @Success 200 {object} FilesResponse
// @Router /api/files [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	params := r.URL.Query()
	items, err := h.files.Query(r.Context(), user.UID, strings.ToLower(params.Get("ftype")))
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Database query failed")
		return
	}

	if q := strings.ToLower(params.Get("q")); q != "" {
		filtered := items[:0]
		for _, rec := range items {
			if strings.Contains(rec.NameLower, q) {
				filtered = append(filtered, rec)
			}
		}
		items = filtered
	}

	sortRecords(items, params.Get("sort"), params.Get("order"))

	utils.JSONResponse(w, http.StatusOK, FilesResponse{Items: items})
}

// sortRecords orders records by creation time or size. Unknown sort keys
// fall back to creation time; any order other than desc sorts ascending.
func sortRecords(items []models.FileRecord, sortKey, order string) {
	desc := order == "" || strings.EqualFold(order, "desc")
	less := func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) }
	if sortKey == "size" {
		less = func(i, j int) bool { return items[i].Size < items[j].Size }
	}
	if desc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(items, less)
}

// GET /api/files/{id}/download
// Download godoc
// @Summary Download file bytes
// @Description Streams the stored object. Owner or admin only.
// @Tags Files
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "File id"
// @Success 200 {file} binary
// @Failure 403 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/files/{id}/download [get]
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	rec, status, msg := h.lookup(r)
	if rec == nil {
		utils.JSONError(w, status, msg)
		return
	}
	if rec.UID != user.UID && !user.IsAdmin {
		utils.JSONError(w, http.StatusForbidden, "Forbidden")
		return
	}

	stream, err := h.store.Open(r.Context(), rec.ObjectKey)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to read file")
		return
	}
	defer stream.Close()

	w.Header().Set("Content-Disposition", utils.ContentDisposition(rec.Name))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)

	// A copy error here means the client went away; the deferred close
	// releases the object stream either way.
	_, _ = io.Copy(w, stream)
}

// DELETE /api/files/{id}
// Delete godoc
// @Summary Delete a file
// @Description Deletes the object and its metadata. Owner only; admins cannot delete other users' files.
// @Tags Files
// @Produce json
// @Security BearerAuth
// @Param id path string true "File id"
// @Success 200 {object} OkResponse
// @Failure 403 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/files/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	rec, status, msg := h.lookup(r)
	if rec == nil {
		utils.JSONError(w, status, msg)
		return
	}
	if rec.UID != user.UID {
		utils.JSONError(w, http.StatusForbidden, "Only owner can delete")
		return
	}

	// Object first, metadata second: a failure in between leaves a stale
	// record rather than an unreachable orphaned object.
	if err := h.store.Delete(r.Context(), rec.ObjectKey); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to delete file")
		return
	}
	if err := h.files.Delete(r.Context(), rec.ID); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to delete file metadata")
		return
	}

	utils.JSONResponse(w, http.StatusOK, OkResponse{Ok: true})
}

// lookup fetches the record addressed by the id path segment. A nil
// record comes with the status and message to respond with.
func (h *Handler) lookup(r *http.Request) (*models.FileRecord, int, string) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		// malformed ids cannot name a record
		return nil, http.StatusNotFound, "Not found"
	}
	rec, err := h.files.Get(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, http.StatusNotFound, "Not found"
	}
	if err != nil {
		return nil, http.StatusInternalServerError, "Database query failed"
	}
	return rec, http.StatusOK, ""
}
