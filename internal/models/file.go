package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileRecord is the stored metadata for one uploaded file. Records are
// immutable after creation; the lifecycle is create once, delete once.
type FileRecord struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UID       string    `json:"uid" gorm:"index;not null"` // owner identity
	Name      string    `json:"name" gorm:"not null"`
	NameLower string    `json:"name_lower" gorm:"index;not null"` // for case-insensitive name search
	Type      string    `json:"type" gorm:"index;not null"`       // json|txt|pdf
	Size      int64     `json:"size" gorm:"not null"`             // bytes
	ObjectKey string    `json:"object_key" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
}

func (f *FileRecord) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
