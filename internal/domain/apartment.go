package domain

// Apartment Model
type Apartment struct {
	ID           uint    `gorm:"primaryKey" json:"id"`              // Primary key
	ApartmentNo  string  `gorm:"unique;not null" json:"apartmentNo"` // Human-facing apartment number
	Block        string  `json:"block"`                             // Block name
	Floor        int     `json:"floor"`                             // Floor number
	Rent         float64 `gorm:"not null" json:"rent"`              // Monthly rent
	Image        string  `json:"image"`                             // Image URL
	Availability string  `gorm:"default:available" json:"availability"` // available or unavailable
}
