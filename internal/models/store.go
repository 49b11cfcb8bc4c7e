package models

import "time"

// Store belongs to exactly one user; the unique index on user_id enforces
// one store per user at the storage level.
type Store struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	UserID    uint      `json:"userId" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User     *User     `json:"user,omitempty"`
	Products []Product `json:"products,omitempty" gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
}
