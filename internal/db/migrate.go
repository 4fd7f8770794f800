package db

import (
	"fmt" // Apartment number formatting

	"livingnest/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Migrate performs automatic migration for the database schema and seeds
// the apartment catalog. Apartments are never created through the API, so
// the catalog has to exist before the server takes traffic.
func Migrate(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{}) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Apartment{},
		&domain.Agreement{},
		&domain.Coupon{},
		&domain.Payment{},
		&domain.Announcement{},
	)
	if err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	if err := SeedApartments(db); err != nil {
		logrus.Fatalf("seeding failed: %v", err) // Log fatal error if seeding fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}

// SeedApartments fills an empty catalog with the building's units.
// Re-running against a populated catalog is a no-op.
func SeedApartments(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Apartment{}).Count(&count).Error; err != nil {
		return err
	}
	// Already seeded
	if count > 0 {
		return nil
	}
	blocks := []string{"A", "B"} // Two blocks, six floors, one unit per floor
	var apartments []domain.Apartment
	for _, block := range blocks {
		for floor := 1; floor <= 6; floor++ {
			apartments = append(apartments, domain.Apartment{
				ApartmentNo:  fmt.Sprintf("%s-%d01", block, floor), // e.g. A-301
				Block:        block,
				Floor:        floor,
				Rent:         800 + float64(floor)*50, // Higher floors rent higher
				Availability: "available",
			})
		}
	}
	return db.Create(&apartments).Error
}
