package domain

// Coupon Model
type Coupon struct {
	ID          uint   `gorm:"primaryKey" json:"id"`        // Primary key
	Code        string `gorm:"unique;not null" json:"code"` // Redemption code, lookup key
	Percentage  int    `gorm:"not null" json:"percentage"`  // Discount percentage
	Description string `json:"description"`                 // Marketing copy
	Available   *bool  `gorm:"default:true" json:"available"` // Admin toggles this off to retire the coupon
}
