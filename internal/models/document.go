package models

import "time"

// Document is pure record keeping: metadata plus the storage URL of the
// uploaded object. No lifecycle logic beyond create and delete.
type Document struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"type:varchar(255);not null" json:"name"`
	DocType    string `gorm:"type:varchar(60)" json:"doc_type"`
	Size       int64  `json:"size"`
	MimeType   string `gorm:"type:varchar(120)" json:"mime_type"`
	StorageURL string `gorm:"type:varchar(512);not null" json:"storage_url"`

	// Object key inside the store, used for best-effort removal
	StorageKey string `gorm:"type:varchar(255)" json:"-"`

	TenantID   *uint `gorm:"index" json:"tenant_id"`
	PropertyID *uint `gorm:"index" json:"property_id"`

	UploadedAt time.Time `gorm:"not null" json:"uploaded_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
