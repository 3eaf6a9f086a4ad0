// Command seed migrates the schema and loads the demo users and products.
// Existing rows are updated in place, so re-running it is safe.
package main

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/inventario-app/inventario/internal/config"
	"github.com/inventario-app/inventario/internal/hash"
	"github.com/inventario-app/inventario/internal/models"
	"github.com/inventario-app/inventario/pkg/db"
)

var sampleProducts = []models.Product{
	{SKU: "LAP001", Name: "Laptop Dell Inspiron 15", Qty: 10, Price: 899.99},
	{SKU: "MON002", Name: "Monitor Samsung 24\" Full HD", Qty: 25, Price: 199.99},
	{SKU: "TEC003", Name: "Teclado mecánico RGB", Qty: 15, Price: 89.99},
	{SKU: "MOU004", Name: "Mouse gaming inalámbrico", Qty: 30, Price: 59.99},
	{SKU: "HEA005", Name: "Auriculares con micrófono", Qty: 20, Price: 79.99},
}

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	if err := seedUsers(database); err != nil {
		log.Fatalf("seed users: %v", err)
	}
	if err := seedProducts(database); err != nil {
		log.Fatalf("seed products: %v", err)
	}

	log.Println("seed complete")
}

func seedUsers(database *gorm.DB) error {
	users := []struct {
		username string
		password string
		role     string
	}{
		{"admin", "admin123", "admin"},
		{"viewer", "viewer123", "viewer"},
	}

	for _, u := range users {
		digest, err := hash.HashPassword(u.password)
		if err != nil {
			return err
		}

		user := models.User{Username: u.username, PasswordHash: digest, Role: u.role}
		if err := database.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoUpdates: clause.AssignmentColumns([]string{"password_hash", "role"}),
		}).Create(&user).Error; err != nil {
			return err
		}

		log.Printf("user %s (%s) ready", u.username, u.role)
	}
	return nil
}

func seedProducts(database *gorm.DB) error {
	for _, p := range sampleProducts {
		product := p
		if err := database.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "sku"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "qty", "price"}),
		}).Create(&product).Error; err != nil {
			return err
		}

		log.Printf("product %s (%s) ready", product.Name, product.SKU)
	}
	return nil
}
