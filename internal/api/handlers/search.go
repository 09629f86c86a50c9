package handlers

import (
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"fileharbor/internal/textscan"
	"fileharbor/internal/utils"
)

const (
	// searchByteCap bounds how much of each object the scan reads,
	// regardless of true object size.
	searchByteCap = 1_000_000

	defaultMaxResults        = 25
	defaultMaxMatchesPerFile = 20
)

// GET /api/files/search-content
// SearchContent godoc
// @Summary Search text within stored files
// @Description Scans txt and json files (newest first) for a case-insensitive substring. PDFs are skipped; reads are capped per file.
// @Tags Files
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search text"
// @Param scope query string false "mine or all (all requires admin)" default(mine)
// @Param max_results query int false "Maximum files returned" default(25)
// @Param max_matches_per_file query int false "Maximum matching lines per file" default(20)
// @Success 200 {object} ContentSearchResponse
// @Failure 400 {object} utils.Payload
// @Failure 403 {object} utils.Payload
// @Router /api/files/search-content [get]
func (h *Handler) SearchContent(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	params := r.URL.Query()

	q := strings.TrimSpace(params.Get("q"))
	if q == "" {
		utils.JSONError(w, http.StatusBadRequest, "q is required")
		return
	}

	scope := params.Get("scope")
	if scope == "" {
		scope = "mine"
	}
	if scope != "mine" && scope != "all" {
		utils.JSONError(w, http.StatusBadRequest, "scope must be mine|all")
		return
	}
	if scope == "all" && !user.IsAdmin {
		utils.JSONError(w, http.StatusForbidden, "Admin only")
		return
	}

	maxResults := intParam(params, "max_results", defaultMaxResults)
	maxMatches := intParam(params, "max_matches_per_file", defaultMaxMatchesPerFile)

	uid := user.UID
	if scope == "all" {
		uid = ""
	}
	docs, err := h.files.Query(r.Context(), uid, "")
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Database query failed")
		return
	}

	// newest first keeps the scan order, and therefore the result list,
	// deterministic
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})

	items := make([]SearchHit, 0)
	skippedPDF := 0
	truncatedFiles := 0

	for _, meta := range docs {
		if meta.Type == "pdf" {
			skippedPDF++
			continue
		}

		raw, err := h.store.GetCapped(r.Context(), meta.ObjectKey, searchByteCap)
		if err != nil {
			utils.JSONError(w, http.StatusInternalServerError, "Failed to read file contents")
			return
		}
		if len(raw) > searchByteCap {
			truncatedFiles++
			raw = raw[:searchByteCap]
		}

		if !textscan.IsProbablyText(raw) {
			continue
		}

		// tolerate invalid UTF-8 instead of failing the scan
		text := strings.ToValidUTF8(string(raw), "")

		matches := textscan.FindLineMatches(text, q, maxMatches)
		if len(matches) == 0 {
			continue
		}
		items = append(items, SearchHit{File: meta, Matches: matches})
		if len(items) >= maxResults {
			break
		}
	}

	utils.JSONResponse(w, http.StatusOK, ContentSearchResponse{
		Q:              q,
		Items:          items,
		SkippedPDF:     skippedPDF,
		TruncatedFiles: truncatedFiles,
	})
}

func intParam(params url.Values, key string, fallback int) int {
	v, err := strconv.Atoi(params.Get(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
