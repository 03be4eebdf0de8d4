package database

import (
	"gorm.io/gorm"

	"github.com/Amsa221/softskills-project/internal/models"
)

// Migrate applies the schema for every model the application owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Categorie{},
		&models.Tag{},
		&models.Article{},
		&models.Commentaire{},
		&models.Payment{},
		&models.DailyStat{},
		&models.SoftSkill{},
		&models.NewsletterSubscription{},
	)
}
