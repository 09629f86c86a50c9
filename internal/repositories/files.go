package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fileharbor/internal/models"
)

// ErrNotFound is returned when no record matches the given id.
var ErrNotFound = errors.New("file record not found")

// FileRepo is the metadata access layer for file records.
type FileRepo struct {
	db *gorm.DB
}

func NewFileRepo(db *gorm.DB) *FileRepo {
	return &FileRepo{db: db}
}

func (r *FileRepo) Create(ctx context.Context, rec *models.FileRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *FileRepo) Get(ctx context.Context, id uuid.UUID) (*models.FileRecord, error) {
	var rec models.FileRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes the record with the given id. Deleting an id that does
// not exist reports ErrNotFound rather than succeeding silently.
func (r *FileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.FileRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Query returns records filtered by owner and/or type. Empty uid matches
// all owners (admin scope); empty ftype matches all types.
func (r *FileRepo) Query(ctx context.Context, uid, ftype string) ([]models.FileRecord, error) {
	q := r.db.WithContext(ctx).Model(&models.FileRecord{})
	if uid != "" {
		q = q.Where("uid = ?", uid)
	}
	if ftype != "" {
		q = q.Where("type = ?", ftype)
	}
	recs := make([]models.FileRecord, 0)
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
