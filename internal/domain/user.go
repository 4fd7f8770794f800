package domain

import "time"

// User Model
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`         // Primary key
	Email     string    `gorm:"unique;not null" json:"email"` // Unique email, the login identity
	Name      string    `json:"name"`                         // Display name
	Role      string    `gorm:"default:user" json:"role"`     // Role: user, member or admin
	CreatedAt time.Time `json:"created_at"`                   // First-login timestamp
}
