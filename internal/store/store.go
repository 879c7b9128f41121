package store

import "gorm.io/gorm"

// Store provides data access for users, folders and PDF records.
type Store struct {
	DB *gorm.DB
}

// NewStore creates a new Store backed by the given GORM handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}
