package store

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors surfaced to the HTTP layer, which maps them onto
// status codes.
var (
	ErrNotFound           = errors.New("record not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrPropertyHasTenants = errors.New("property has linked tenants and cannot be deleted")
	ErrInvalidValue       = errors.New("invalid field value")
)

// Store is the single access point to the persistence layer. One file per
// entity keeps the query surface navigable.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for the rare caller that needs it
// (migrations, tests).
func (s *Store) DB() *gorm.DB {
	return s.db
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
