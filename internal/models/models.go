package models

import (
	"time"
)

type Product struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"     json:"id"`
	SKU       string    `gorm:"column:sku;unique;not null"   json:"sku"`
	Name      string    `gorm:"not null"                     json:"name"`
	Qty       int       `gorm:"not null"                     json:"qty"`
	Price     float64   `gorm:"not null"                     json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// User rows are created by the seed tooling only; the request pipeline reads
// them during login and never mutates them.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null"                 json:"role"`
}
