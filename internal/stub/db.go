package stub

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the stub database and runs migrations. The driver is chosen
// from the DSN: postgres DSNs use the postgres driver, anything else is
// treated as a sqlite path, matching the original backend's sqlite file.
func InitDB(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.Contains(dsn, "host=") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&User{}, &WashingMachine{}, &Booking{}); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	if err := seed(db); err != nil {
		return nil, fmt.Errorf("seed failed: %w", err)
	}
	return db, nil
}

// seed inserts the default admin account and eight machines on first run.
func seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		admin := User{
			StudentID: "admin",
			Username:  "Administrator",
			Password:  HashPassword("admin123"),
			Role:      "admin",
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Println("seeded default admin account")
	}

	if err := db.Model(&WashingMachine{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		machines := make([]WashingMachine, 0, 8)
		for i := 1; i <= 8; i++ {
			machines = append(machines, WashingMachine{
				MachineName: fmt.Sprintf("Machine %d", i),
				Status:      "available",
			})
		}
		if err := db.Create(&machines).Error; err != nil {
			return err
		}
		log.Println("seeded 8 machines")
	}
	return nil
}

// HashPassword hashes a password the way the original backend did.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
