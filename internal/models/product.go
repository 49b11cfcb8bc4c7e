package models

import "time"

// Product is an item sold by a store.
type Product struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Price     float64   `json:"price" gorm:"not null;check:price > 0"`
	StoreID   uint      `json:"storeId" gorm:"index;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Store *Store `json:"store,omitempty"`
}
