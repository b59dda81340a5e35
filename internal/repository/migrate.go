package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates every table the service owns. Parents come
// before children so FK constraints resolve.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&dishModel{},
		&commentModel{},
		&commentLikeModel{},
		&selectionModel{},
		&ingredientModel{},
		&uploadModel{},
	)
}
