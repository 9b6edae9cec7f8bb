package database

import (
	"rentdesk/server/config"
	"rentdesk/server/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RunMigrations creates or extends the schema for every model. AutoMigrate
// only adds columns and tables; it never drops anything.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Property{},
		&models.Tenant{},
		&models.Payment{},
		&models.MaintenanceRequest{},
		&models.Document{},
		&models.DashboardChart{},
	)
}

// EnsureManagerExists seeds a manager account on first boot when the
// configuration provides one and no manager profile exists yet.
func EnsureManagerExists(db *gorm.DB, cfg *config.Config, logger *logrus.Logger) error {
	email := cfg.Auth.SeedManagerEmail
	password := cfg.Auth.SeedManagerPassword
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.Profile{}).
		Where("user_type = ?", models.UserTypeManager).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	user := models.User{Email: email, PasswordHash: password}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	profile := models.Profile{UserID: user.ID, UserType: models.UserTypeManager}
	if err := db.Create(&profile).Error; err != nil {
		return err
	}

	logger.WithField("email", email).Info("Seeded initial manager account")
	return nil
}
