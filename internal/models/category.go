package models

import "time"

// Category represents the categories table
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"uniqueIndex;not null;size:255" json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for Category model
func (Category) TableName() string {
	return "categories"
}
