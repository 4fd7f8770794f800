package domain

// Payment Model
type Payment struct {
	ID            uint    `gorm:"primaryKey" json:"id"`     // Primary key
	Email         string  `gorm:"not null" json:"email"`    // Paying member's email
	ApartmentNo   string  `gorm:"not null" json:"apartmentNo"` // Apartment being paid for
	Rent          float64 `gorm:"not null" json:"rent"`     // Rent amount before discount
	Amount        float64 `gorm:"not null" json:"amount"`   // Charged amount after any coupon
	Month         string  `json:"month"`                    // Rent month, e.g. "January"
	TransactionID string  `json:"transactionId"`            // Processor transaction reference
	CreatedAt     int64   `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
