package handlers

import (
	"fileharbor/internal/models"
	"fileharbor/internal/textscan"
)

type FilesResponse struct {
	Items []models.FileRecord `json:"items"`
}

type OkResponse struct {
	Ok bool `json:"ok"`
}

// SearchHit pairs a record with the matching lines found in its content.
type SearchHit struct {
	File    models.FileRecord `json:"file"`
	Matches []textscan.Match  `json:"matches"`
}

type ContentSearchResponse struct {
	Q              string      `json:"q"`
	Items          []SearchHit `json:"items"`
	SkippedPDF     int         `json:"skipped_pdf"`
	TruncatedFiles int         `json:"truncated_files"`
}
