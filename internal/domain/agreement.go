package domain

import "time"

// Agreement lifecycle values. Status stays "checked" for both outcomes;
// the decision field records which way an admin ruled.
const (
	AgreementPending = "pending"
	AgreementChecked = "checked"

	DecisionApproved = "approved"
	DecisionRejected = "rejected"
)

// Agreement Model
type Agreement struct {
	ID          uint      `gorm:"primaryKey" json:"id"`                                             // Primary key
	UserEmail   string    `gorm:"not null;uniqueIndex:idx_user_apartment" json:"userEmail"`         // Applicant email
	ApartmentNo string    `gorm:"not null;uniqueIndex:idx_user_apartment" json:"apartmentNo"`       // Applied-for apartment
	Block       string    `json:"block"`                                                            // Block name, copied from the apartment
	Floor       int       `json:"floor"`                                                            // Floor number, copied from the apartment
	Rent        float64   `json:"rent"`                                                             // Rent at application time
	Status      string    `gorm:"default:pending" json:"status"`                                    // pending or checked
	Decision    string    `json:"decision"`                                                         // approved or rejected once checked
	Date        time.Time `json:"date"`                                                             // Application timestamp
}
