// Package handlers implements the file-management HTTP operations.
package handlers

import (
	"net/http"

	"fileharbor/internal/api/middleware"
	"fileharbor/internal/auth"
	"fileharbor/internal/repositories"
	"fileharbor/internal/storage"
	"fileharbor/internal/utils"
)

// Handler carries the injected backends shared by all operations.
type Handler struct {
	files *repositories.FileRepo
	store storage.ObjectStore
}

func New(files *repositories.FileRepo, store storage.ObjectStore) *Handler {
	return &Handler{files: files, store: store}
}

// currentUser fetches the authenticated user placed in the context by the
// auth middleware. A missing user means the route was wired outside the
// middleware chain.
func currentUser(w http.ResponseWriter, r *http.Request) (auth.User, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return user, ok
}
