// Package repo is the gorm data access layer. The *gorm.DB handle is
// constructed at startup and injected; nothing here holds package-level
// state.
package repo

import "gorm.io/gorm"

type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}
