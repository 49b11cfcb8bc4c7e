package repositories

import "gorm.io/gorm"

// Preload scopes. They decide which columns of a relation are rendered, so
// summaries never carry more than the caller asked for.

func orderByID(tx *gorm.DB) *gorm.DB {
	return tx.Order("id ASC")
}

func userSummary(tx *gorm.DB) *gorm.DB {
	return tx.Select("id", "name", "email")
}

func ownerName(tx *gorm.DB) *gorm.DB {
	return tx.Select("id", "name")
}

func storeSummary(tx *gorm.DB) *gorm.DB {
	return tx.Select("id", "name", "user_id")
}
