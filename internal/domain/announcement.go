package domain

import "time"

// Announcement Model
type Announcement struct {
	ID          uint      `gorm:"primaryKey" json:"id"`    // Primary key
	Title       string    `gorm:"not null" json:"title"`   // Headline shown to residents
	Description string    `gorm:"not null" json:"description"` // Body text
	CreatedAt   time.Time `json:"created_at"`              // Posting timestamp
}
